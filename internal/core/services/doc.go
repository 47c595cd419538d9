// Package services implements the application core. Services implement
// the driving ports and depend on driven ports for external
// collaborators, never on concrete adapters.
package services
