/*
Package embertest provides in memory implementations of the engine
interfaces to overwrite in tests.
*/
package embertest
