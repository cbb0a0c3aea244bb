// Package docs embeds the user documentation topics served by `lb topic`.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var topicFiles embed.FS

// GetTopic returns the content of a documentation topic. The special topic
// "*" expands to all topics.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(all...)
	}
	content, err := topicFiles.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates the content of multiple topics, expanding "*".
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		if topic == "*" {
			all, err := GetAllTopics()
			if err != nil {
				return "", err
			}
			expanded, err := GetTopics(all...)
			if err != nil {
				return "", err
			}
			b.WriteString(expanded)
			continue
		}
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics lists every available topic, sorted, readme excluded.
func GetAllTopics() ([]string, error) {
	entries, err := fs.ReadDir(topicFiles, ".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	slices.Sort(topics)
	return topics, nil
}
