/*
Package errors implements custom error interfaces for the engine.

Error declarations should be generic and cover broad range of cases. Each
returned error instance can wrap a generic error declaration to provide more
details.

This package provides a broad range of errors declared that can be used
throughout the application. Create custom error only if a reasonable match
was not found here.
*/
package errors
