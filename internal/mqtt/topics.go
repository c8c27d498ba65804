package mqtt

import (
	"fmt"
	"strings"
)

const (
	topicRoot    = "pits"
	topicDevices = "devices"
	topicReport  = "report"
)

// ReportTopic returns the topic a device publishes its reports on.
//
// Example: pits/devices/cam-1/report
func ReportTopic(deviceID string) string {
	return fmt.Sprintf("%s/%s/%s/%s", topicRoot, topicDevices, deviceID, topicReport)
}

// AllReportsTopic matches the reports of every device.
func AllReportsTopic() string {
	return ReportTopic("+")
}

// DeviceIDFromReportTopic extracts the device id from a report topic.
func DeviceIDFromReportTopic(topic string) (string, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 4 || parts[0] != topicRoot || parts[1] != topicDevices || parts[3] != topicReport || parts[2] == "" {
		return "", fmt.Errorf("%w: %q is not a device report topic", ErrInvalidTopic, topic)
	}
	return parts[2], nil
}
