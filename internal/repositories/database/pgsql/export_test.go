package pgsql

// NextBackoff exposes the reconnect schedule to tests.
var NextBackoff = nextBackoff
