/*
Package ports defines the driven ports (interfaces) of the automation
authoring core.

These interfaces decouple the editor and the save pipeline from concrete
backends: where automations are persisted, where the listing cache lives, and
where the read-only reference catalogs (templates, team members) come from.
Adapters under internal/adapters provide the implementations.
*/
package ports
