// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package describe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/hackathon-support/hackbot/internal/pkg/gcloud"
	"github.com/hackathon-support/hackbot/internal/pkg/term/color"
)

// Service contains the description of a deployed Cloud Run service.
type Service struct {
	Name                string          `json:"name"`
	Project             string          `json:"project,omitempty"`
	URL                 string          `json:"url"`
	Ready               bool            `json:"ready"`
	Message             string          `json:"message,omitempty"`
	LatestReadyRevision string          `json:"latestReadyRevision"`
	MinInstances        string          `json:"minInstances,omitempty"`
	MaxInstances        string          `json:"maxInstances,omitempty"`
	Conditions          []Condition     `json:"conditions"`
	Traffic             []TrafficTarget `json:"traffic"`
}

// Condition is a reconciliation check reported by Cloud Run.
type Condition struct {
	Type               string `json:"type"`
	Status             string `json:"status"`
	Message            string `json:"message,omitempty"`
	LastTransitionTime string `json:"lastTransitionTime,omitempty"`
}

// TrafficTarget is a revision along with the share of requests routed to it.
type TrafficTarget struct {
	RevisionName   string `json:"revisionName"`
	Percent        int    `json:"percent"`
	LatestRevision bool   `json:"latestRevision"`
}

// NewService flattens a service returned by gcloud into a description.
func NewService(svc *gcloud.Service) *Service {
	ready, message := svc.Ready()
	out := &Service{
		Name:                svc.Metadata.Name,
		Project:             svc.Metadata.Namespace,
		URL:                 svc.Status.URL,
		Ready:               ready,
		Message:             message,
		LatestReadyRevision: svc.Status.LatestReadyRevision,
	}
	out.MinInstances, out.MaxInstances = svc.ScalingBounds()
	for _, cond := range svc.Status.Conditions {
		out.Conditions = append(out.Conditions, Condition{
			Type:               cond.Type,
			Status:             cond.Status,
			Message:            cond.Message,
			LastTransitionTime: cond.LastTransitionTime,
		})
	}
	for _, target := range svc.Status.Traffic {
		out.Traffic = append(out.Traffic, TrafficTarget{
			RevisionName:   target.RevisionName,
			Percent:        target.Percent,
			LatestRevision: target.LatestRevision,
		})
	}
	return out
}

// JSONString returns the stringified Service struct with json format.
func (s *Service) JSONString() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshal service description: %w", err)
	}
	return fmt.Sprintf("%s\n", b), nil
}

// HumanString returns the stringified Service struct with human readable format.
func (s *Service) HumanString() string {
	var b bytes.Buffer
	writer := tabwriter.NewWriter(&b, minCellWidth, tabWidth, cellPaddingWidth, paddingChar, noAdditionalFormatting)
	fmt.Fprint(writer, color.Bold.Sprint("Service Status\n\n"))
	writer.Flush()
	fmt.Fprintf(writer, " Status %s\n", readyColor(s.Ready))
	if s.Message != "" {
		fmt.Fprintf(writer, " %s\n", s.Message)
	}
	fmt.Fprint(writer, color.Bold.Sprint("\nAbout\n\n"))
	writer.Flush()
	if s.Project != "" {
		fmt.Fprintf(writer, "  %s\t%s\n", "Project", s.Project)
	}
	fmt.Fprintf(writer, "  %s\t%s\n", "URL", s.URL)
	fmt.Fprintf(writer, "  %s\t%s\n", "Latest Revision", s.LatestReadyRevision)
	if s.MinInstances != "" {
		fmt.Fprintf(writer, "  %s\t%s\n", "Min Instances", s.MinInstances)
	}
	if s.MaxInstances != "" {
		fmt.Fprintf(writer, "  %s\t%s\n", "Max Instances", s.MaxInstances)
	}
	writer.Flush()
	fmt.Fprint(writer, color.Bold.Sprint("\nConditions\n\n"))
	writer.Flush()
	headers := []string{"Type", "Status", "Since", "Message"}
	fmt.Fprintf(writer, "  %s\n", strings.Join(headers, "\t"))
	for _, cond := range s.Conditions {
		message := cond.Message
		if message == "" {
			message = "-"
		}
		fmt.Fprintf(writer, "  %s\t%s\t%s\t%s\n", cond.Type, statusColor(cond.Status), since(cond.LastTransitionTime), message)
	}
	writer.Flush()
	fmt.Fprint(writer, color.Bold.Sprint("\nTraffic\n\n"))
	writer.Flush()
	fmt.Fprintf(writer, "  %s\t%s\n", "Revision", "Percent")
	for _, target := range s.Traffic {
		name := target.RevisionName
		if target.LatestRevision {
			name = fmt.Sprintf("%s (latest)", name)
		}
		fmt.Fprintf(writer, "  %s\t%s\n", name, strconv.Itoa(target.Percent))
	}
	writer.Flush()
	return b.String()
}

// since turns a RFC3339 timestamp reported by Cloud Run into a relative time.
// Timestamps that do not parse are shown as-is.
func since(timestamp string) string {
	if timestamp == "" {
		return "-"
	}
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return timestamp
	}
	return humanizeTime(t)
}

func readyColor(ready bool) string {
	if ready {
		return color.Green.Sprint("READY")
	}
	return color.Red.Sprint("NOT READY")
}

func statusColor(status string) string {
	switch status {
	case "True":
		return color.Green.Sprint(status)
	case "Unknown":
		return color.Yellow.Sprint(status)
	default:
		return color.Red.Sprint(status)
	}
}
