/*
Package gconf provides a toolset for managing an extension configuration.

Each extension that defines a configuration object can use gconf to load the
initial state from the genesis options, to read the current state and to
declare an owner-guarded update handler.

Configuration is stored under a well known key, one singleton instance per
extension.
*/
package gconf
