/*
Package httpapi implements both halves of the persistence contract: the
multipart client the save pipeline dispatches through, and a chi-based
reference server that parses the same contract into an AutomationStore.

The wire format is a multipart form: scalar fields (name, description,
trigger), JSON-encoded fields (triggerConfig, nodes, edges) and zero or more
binary parts named {nodeId}_{mediaClass}File.
*/
package httpapi
