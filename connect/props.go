package connect

// Props is the plain key-value shape consumers receive.
type Props map[string]any

// MergeFunc combines the three prop sources into the final shape handed to a
// consumer.
type MergeFunc func(stateProps, dispatchProps, ownProps Props) Props

// DefaultMerge copies own props, then overlays state props and dispatch
// props. Later sources win on key collisions.
func DefaultMerge(stateProps, dispatchProps, ownProps Props) Props {
	merged := make(Props, len(ownProps)+len(stateProps)+len(dispatchProps))
	for k, v := range ownProps {
		merged[k] = v
	}
	for k, v := range stateProps {
		merged[k] = v
	}
	for k, v := range dispatchProps {
		merged[k] = v
	}
	return merged
}
