package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"pubsub": map[string]any{
			"topicId": "",
		},
		"tasks": map[string]any{
			"targetBaseUrl": "",
			"queueId":       "",
		},
		"retention": map[string]any{
			"pageSize": 500,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "TASKS_TARGETBASEURL", want: "tasks.targetBaseUrl"},
		{envKey: "TASKS_QUEUEID", want: "tasks.queueId"},
		{envKey: "RETENTION_PAGESIZE", want: "retention.pageSize"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyRetentionDefaults(t *testing.T) {
	var r RetentionConfig
	applyRetentionDefaults(&r)

	if r.DefaultVisitIntervalDays != 30 {
		t.Fatalf("DefaultVisitIntervalDays = %d, want 30", r.DefaultVisitIntervalDays)
	}
	if r.Timezone != "Europe/Zagreb" {
		t.Fatalf("Timezone = %q, want Europe/Zagreb", r.Timezone)
	}
	if r.PageSize != 500 {
		t.Fatalf("PageSize = %d, want 500", r.PageSize)
	}
	if r.ReminderLead != 2*time.Hour {
		t.Fatalf("ReminderLead = %v, want 2h", r.ReminderLead)
	}
	if r.ReminderWindowMin != 90*time.Minute || r.ReminderWindowMax != 150*time.Minute {
		t.Fatalf("window = [%v, %v], want [90m, 150m]", r.ReminderWindowMin, r.ReminderWindowMax)
	}

	// Explicit values are preserved
	r2 := RetentionConfig{DefaultVisitIntervalDays: 21, PageSize: 100}
	applyRetentionDefaults(&r2)
	if r2.DefaultVisitIntervalDays != 21 || r2.PageSize != 100 {
		t.Fatalf("explicit values overwritten: %+v", r2)
	}
}
