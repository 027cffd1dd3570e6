// Package tsconfig locates and parses a project's tsconfig.json and reports
// the path-mapping settings it declares.
//
// Discovery order:
//  1. TS_NODE_PROJECT, a config file or a directory holding tsconfig.json,
//     resolved against the working directory.
//  2. The working directory itself, when it names a file.
//  3. The nearest tsconfig.json found walking up from the working directory.
//
// Config files may contain comments and trailing commas. A string "extends"
// is followed recursively: the child wins field by field, "paths" is replaced
// as a whole, and an inherited baseUrl is re-anchored to the extending file.
// TS_NODE_BASEURL overrides the declared baseUrl.
package tsconfig
