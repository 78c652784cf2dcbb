// Copyright 2025 StudyPort Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/studyport/coursematcher/ai"
	"github.com/studyport/coursematcher/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Segmenter implements ai.Segmenter using OpenAI-compatible chat APIs.
type Segmenter struct {
	client  llms.Model
	timeout time.Duration
	logger  *slog.Logger
}

// parsedCourse is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type parsedCourse struct {
	Title       string `json:"course_title"`
	Description string `json:"description"`
}

// parseResult is the wrapper structure for the LLM's JSON response.
type parseResult struct {
	Courses []parsedCourse `json:"courses"`
}

// newSegmenter is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newSegmenter(config *ai.Config) (*Segmenter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.SegmenterHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.SegmenterModel),
	)
	if err != nil {
		return nil, err
	}

	return &Segmenter{
		client:  client,
		timeout: config.SegmentTimeout,
		logger:  slog.Default().With("component", "openai-segmenter"),
	}, nil
}

// NewSegmenter creates a new course segmenter using the provided configuration.
//
// Returns ai.Segmenter interface to enforce abstraction.
func NewSegmenter(config *ai.Config) (ai.Segmenter, error) {
	return newSegmenter(config)
}

// SegmentCourses extracts course-like entries from free text using an LLM.
//
// The text is whitespace-collapsed before the model sees it, so the
// one-course-or-many decision cannot be swayed by incidental formatting such
// as paragraph breaks or bullets. Extraction failures, refusals, timeouts and
// persistently malformed responses all degrade to an empty sequence.
func (s *Segmenter) SegmentCourses(ctx context.Context, text string) ([]core.ParsedEntry, error) {
	text = collapseWhitespace(text)
	if text == "" {
		return nil, nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(segmentationPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result parseResult
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := s.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			// A timed out extraction is the same as one that found nothing.
			if errors.Is(err, context.DeadlineExceeded) {
				s.logger.Warn("segmentation timed out", "timeout", s.timeout)
				return nil, nil
			}
			s.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			s.logger.Debug("no choices returned from model")
			return nil, nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			s.logger.Warn("error parsing segmenter response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		// Persistent garbage from the model is a refusal in practice; the
		// caller falls back to treating the whole input as one entry.
		s.logger.Error("failed to parse segmenter response after retries", "err", lastErr)
		return nil, nil
	}

	entries := make([]core.ParsedEntry, 0, len(result.Courses))
	for _, course := range result.Courses {
		title := strings.TrimSpace(course.Title)
		if title == "" {
			continue
		}
		entries = append(entries, core.ParsedEntry{
			Title:       title,
			Description: strings.TrimSpace(course.Description),
		})
	}

	s.logger.Debug("segmented user text", "entries", len(entries))
	return entries, nil
}
