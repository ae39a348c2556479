// Package services implements the driving ports on top of the topology
// engine.
//
// DocumentService owns the open map and its save/open/new lifecycle;
// SettingsService reads and writes the ConfigStore keys that tune it.
package services
