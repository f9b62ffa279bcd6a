package version

// AppVersion is the version reported by the /version and /health endpoints
// and by the scan command's SARIF output.
var AppVersion = "2.0.0"
