// Package hclconf provides the concrete HCL implementation of the
// defaults-file loading interface defined in the config package. It is
// responsible for parsing, expression evaluation against the process
// environment, and validation of decoded values.
package hclconf
