// Package modules contains the feature areas of the site.
//
// Each subdirectory is a module that implements the `module.Module` interface
// and is mounted under `/<name>`. Modules are listed in
// `internal/server/modules.go` and booted by the server at startup.
package modules
