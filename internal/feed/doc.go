// Package feed implements picoled-feed, the host side of the telemetry link.
//
// It samples CPU load, memory use and temperatures from /proc and /sys and
// writes one protocol line per interval to the display's serial port:
//
//	cpu:37,mem:61,cpu_temp:52
//
// Configuration comes from flags, PICOLED_* environment variables and an
// optional YAML file, in that order of precedence.
package feed
