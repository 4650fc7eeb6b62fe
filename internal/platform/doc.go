// Package platform contains OS integration glue: opening external links in
// the user's browser, locating and watching form files on disk.
package platform
