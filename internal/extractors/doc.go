// Package extractors converts uploaded documents into plain text.
// Each format lives in its own subpackage; the registry dispatches on the
// file extension.
package extractors
