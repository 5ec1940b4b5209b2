package prompt

// Package prompt implements interactive resolution selection: a numbered menu
// over the match table with estimated sizes, read through a LineReader so the
// loop can be exercised with scripted input in tests.
