package treeline

// Version is the release of the treeline module.
const Version = "0.1.0"
