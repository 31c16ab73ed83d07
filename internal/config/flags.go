// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-app-version application version
//	-dist built frontend directory
//	-root-id id of the element the voice client mounts into
//	-webrtc-url default WebRTC offer endpoint
//	-ui-config JSON file with the configuration injected into pages
//	-passthrough comma separated allowlist of forwarded configuration keys
//	-probe-url base URL of the host inspected by the probe
//	-probe-timeout probe request timeout
//	-page page path inspected by the probe
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var requestTimeout, shutdownTimeout, probeTimeout time.Duration
	var appVersion string
	var distDir, rootID, webrtcURL, uiConfigPath, passthrough string
	var probeURL, probePage string
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	flag.StringVar(&appVersion, "app-version", "", "Application version")
	flag.StringVar(&distDir, "dist", "", "Built frontend directory")
	flag.StringVar(&rootID, "root-id", "", "Root element id")
	flag.StringVar(&webrtcURL, "webrtc-url", "", "Default WebRTC offer endpoint")
	flag.StringVar(&uiConfigPath, "ui-config", "", "JSON file injected into served pages")
	flag.StringVar(&passthrough, "passthrough", "", "Comma separated allowlist of forwarded config keys")
	flag.StringVar(&probeURL, "probe-url", "", "Base URL of the inspected host")
	flag.DurationVar(&probeTimeout, "probe-timeout", 0, "Probe request timeout")
	flag.StringVar(&probePage, "page", "", "Page path inspected by the probe")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version: appVersion,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		UI: UI{
			DistDir:         distDir,
			RootElementID:   rootID,
			WebRTCURL:       webrtcURL,
			ConfigFilePath:  uiConfigPath,
			PassthroughKeys: splitList(passthrough),
		},
		Probe: Probe{
			BaseURL: probeURL,
			Timeout: probeTimeout,
			Page:    probePage,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
