package chainz

// Version is the current release of Grappling Chainz.
var Version = "0.3.0"
