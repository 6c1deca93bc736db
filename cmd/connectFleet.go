package cmd

import (
	"fmt"
	"strings"
)

// defaultUser is used when neither flags, environment, nor the fleet file
// name an SSH user.
const defaultUser = "ec2-user"

// connectFleet resolves the host list and credentials from flags, the
// environment, and the optional fleet file, then opens a session to every
// host. Fleet-file values fill only what the CLI left unset. The returned
// fleetConfig is nil when no fleet file was given.
func connectFleet() (*fleetAgent, *fleetConfig, error) {
	var fc *fleetConfig
	if cfgFleetPath != "" {
		loaded, err := loadFleetConfig(cfgFleetPath)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid fleet file: %v", errHostConfig, err)
		}
		fc = loaded
	}

	hosts := parseHostList(cfgHosts)
	if len(hosts) == 0 && fc != nil {
		hosts = parseHostList(strings.Join(fc.Hosts, ","))
	}
	if len(hosts) == 0 {
		return nil, nil, fmt.Errorf("%w: no hosts configured (use --hosts, --fleet, or EC2_HOSTS)", errHostConfig)
	}

	user := cfgUser
	if user == "" && fc != nil {
		user = fc.User
	}
	if user == "" {
		user = defaultUser
	}

	pem := cfgPemFile
	if pem == "" && fc != nil {
		pem = fc.PemFile
	}

	agent, err := newFleetAgent(hosts, fleetOptions{
		user:        user,
		pemFile:     pem,
		passphrase:  cfgPassphrase,
		password:    cfgPassword,
		knownHosts:  cfgKnownHosts,
		strictHost:  cfgStrictHost,
		connTimeout: cfgConnTimeout,
		check:       cfgCheck,
	})
	if err != nil {
		return nil, nil, err
	}
	return agent, fc, nil
}

// reportName picks the report's display name from the fleet file when one
// was loaded.
func reportName(fc *fleetConfig) string {
	if fc == nil {
		return ""
	}
	return fc.Name
}
