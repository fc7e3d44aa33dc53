package models

import "time"

// InstanceInfo represents the EC2 instance whose volumes are analyzed
type InstanceInfo struct {
	InstanceID       string
	Name             string
	InstanceType     string
	Region           string
	AvailabilityZone string
	State            string
	LaunchTime       *time.Time
}
