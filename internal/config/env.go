// Package config provides shared configuration and logging utilities.
package config

import (
	"net"
	"os"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Address joins the host and port read from hostKey and portKey, falling
// back to the given defaults.
func Address(hostKey, defaultHost, portKey, defaultPort string) string {
	return net.JoinHostPort(GetEnv(hostKey, defaultHost), GetEnv(portKey, defaultPort))
}
