/*
Package ember defines the common interfaces that tie the ember token engine
together: the key-value store contracts, transaction and message types,
handlers and decorators, addresses and module account conditions.

The engine itself lives in the extension packages below x/. The root package
holds only the plumbing those extensions share, plus small implementations
where an interface would be more overhead than help.
*/
package ember
