package app

// Plan is exported for testing offset planning.
var Plan = plan
