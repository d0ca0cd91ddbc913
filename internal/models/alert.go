// Package models defines the inbound data structures the relay accepts from
// Prometheus Alertmanager.
package models

import "time"

// Alert statuses as Alertmanager reports them.
const (
	StatusFiring   = "firing"
	StatusResolved = "resolved"
)

// WebhookPayload represents the Alertmanager webhook payload. Only Alerts is
// acted upon; the envelope fields are accepted and ignored.
type WebhookPayload struct {
	Version           string            `json:"version"`
	GroupKey          string            `json:"groupKey"`
	Status            string            `json:"status"`
	Receiver          string            `json:"receiver"`
	GroupLabels       map[string]string `json:"groupLabels"`
	CommonLabels      map[string]string `json:"commonLabels"`
	CommonAnnotations map[string]string `json:"commonAnnotations"`
	ExternalURL       string            `json:"externalURL"`
	Alerts            []Alert           `json:"alerts"`
}

// Alert represents a single alert from Alertmanager. Labels and Annotations
// are open-ended; no key is guaranteed present.
type Alert struct {
	Status       string            `json:"status"`
	Labels       map[string]string `json:"labels"`
	Annotations  map[string]string `json:"annotations"`
	StartsAt     time.Time         `json:"startsAt"`
	EndsAt       time.Time         `json:"endsAt"`
	GeneratorURL string            `json:"generatorURL"`
	Fingerprint  string            `json:"fingerprint"`
}

// IsFiring returns true if the alert is currently firing. An empty status is
// treated as firing, matching the upstream default for partial payloads.
func (a *Alert) IsFiring() bool {
	return a.Status == StatusFiring || a.Status == ""
}

// IsResolved returns true if the alert has cleared.
func (a *Alert) IsResolved() bool {
	return a.Status == StatusResolved
}

// Label returns the value of a label, falling back to def when the key is
// absent or the map is nil.
func (a *Alert) Label(key, def string) string {
	if a.Labels == nil {
		return def
	}
	if v, ok := a.Labels[key]; ok {
		return v
	}
	return def
}

// Annotation returns the value of an annotation, empty string if not found.
func (a *Alert) Annotation(key string) string {
	if a.Annotations == nil {
		return ""
	}
	return a.Annotations[key]
}
