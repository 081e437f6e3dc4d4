// Package stylesheet extracts custom properties and @keyframes blocks from
// CSS text and merges theme stylesheets into one canonical @theme block.
//
// Only the small CSS subset the merger needs is recognized: single-line
// "--name: value;" declarations, brace-balanced "@keyframes name { ... }"
// blocks, and one top-level "@theme { ... }" block. Comments, strings and
// other at-rules are not modeled; braces inside them are counted like any
// other brace.
package stylesheet
