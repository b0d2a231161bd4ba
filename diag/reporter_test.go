package diag_test

import (
	"testing"

	"github.com/delaneyj/storeparty/diag"
	"github.com/delaneyj/storeparty/storetest"
	"github.com/stretchr/testify/assert"
)

// the same message is only reported once
func TestReporterWarnsOnce(t *testing.T) {
	logger := &storetest.RecordingLogger{}
	reporter := diag.NewReporter(logger)

	reporter.Warn("state mapping must return a plain key-value map", "got", "int")
	reporter.Warn("state mapping must return a plain key-value map", "got", "string")
	reporter.Warn("dispatch mapping must return a plain key-value map", "got", "int")

	assert.Equal(t, []string{
		"state mapping must return a plain key-value map",
		"dispatch mapping must return a plain key-value map",
	}, logger.Messages("warn"))
}

// the first call's details are the ones that land
func TestReporterKeepsFirstDetails(t *testing.T) {
	logger := &storetest.RecordingLogger{}
	reporter := diag.NewReporter(logger)

	reporter.Warn("oops", "got", "first")
	reporter.Warn("oops", "got", "second")

	assert.Len(t, logger.Entries, 1)
	assert.Equal(t, []any{"got", "first"}, logger.Entries[0].Fields)
}

// nil reporters are the production mode and never touch a logger
func TestDisabledReporter(t *testing.T) {
	var reporter *diag.Reporter
	assert.False(t, reporter.Enabled())
	assert.NotPanics(t, func() {
		reporter.Warn("nobody hears this")
	})

	assert.False(t, diag.Disabled().Enabled())
	assert.Nil(t, diag.NewReporter(nil))
}

// enabled reporters say so
func TestEnabledReporter(t *testing.T) {
	reporter := diag.NewReporter(&storetest.RecordingLogger{})
	assert.True(t, reporter.Enabled())
}
