package models

import "time"

// Event represents an AWS EventBridge event carrying a CloudTrail record.
type Event struct {
	ID         string    `json:"id" mapstructure:"id"`
	Time       time.Time `json:"time" mapstructure:"time"`
	Region     string    `json:"region" mapstructure:"region"`
	Source     string    `json:"source" mapstructure:"source"`
	Account    string    `json:"account" mapstructure:"account"`
	Version    string    `json:"version" mapstructure:"version"`
	Detail     Detail    `json:"detail" mapstructure:"detail"`
	DetailType string    `json:"detail-type" mapstructure:"detail-type"`
	Resources  []string  `json:"resources" mapstructure:"resources"`
}

// Detail is the subset of a CloudTrail record needed to identify a newly created resource.
type Detail struct {
	EventID           string            `json:"eventID" mapstructure:"eventID"`
	EventName         string            `json:"eventName" mapstructure:"eventName"`
	EventSource       string            `json:"eventSource" mapstructure:"eventSource"`
	ErrorCode         string            `json:"errorCode" mapstructure:"errorCode"`
	ResponseElements  ResponseElements  `json:"responseElements" mapstructure:"responseElements"`
	RequestParameters RequestParameters `json:"requestParameters" mapstructure:"requestParameters"`
}

// ResponseElements holds the fields of RunInstances and CreateDBInstance responses.
type ResponseElements struct {
	InstancesSet         InstancesSet `json:"instancesSet" mapstructure:"instancesSet"`
	DBInstanceIdentifier string       `json:"dBInstanceIdentifier" mapstructure:"dBInstanceIdentifier"`
	DBInstanceArn        string       `json:"dBInstanceArn" mapstructure:"dBInstanceArn"`
}

// InstancesSet is the list of instances launched by a RunInstances call.
type InstancesSet struct {
	Items []InstanceItem `json:"items" mapstructure:"items"`
}

// InstanceItem identifies a single launched instance.
type InstanceItem struct {
	InstanceID string `json:"instanceId" mapstructure:"instanceId"`
}

// RequestParameters holds the fields of a CreateBucket request.
type RequestParameters struct {
	BucketName string `json:"bucketName" mapstructure:"bucketName"`
}
