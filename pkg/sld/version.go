package sld

// Version is the current version of this resolution core.
const Version = "0.1.0"
