/*
Package chatflow is the authoring core for conversational automations: a
directed graph of steps (trigger, conditions, replies, questions, delays,
template sends, assignments) that a separate conversation runtime later walks
to drive live conversations.

The facade opens editor sessions from persisted records or definition files;
the heavy lifting lives in the subpackages:

  - pkg/flow: the graph data model and the record<->graph transforms
  - pkg/editor: the session mutation API and the save pipeline
  - pkg/ports: the persistence and reference-data interfaces
  - internal/adapters: HTTP, Redis and in-memory implementations
*/
package chatflow
