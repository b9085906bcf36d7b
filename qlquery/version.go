package qlquery

// Version of qlquery (filled in at link time)
var Version string

// EnableDebug triggers some debug-related features (profiling flags, gin debug mode)
var EnableDebug = false
