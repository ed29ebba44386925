package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Summarization system prompts per document type. A file in the sysprompt
// directory overrides the built-in text; the built-ins target Korean
// meeting-note style output.
const (
	defaultConversationPrompt = "[제목]\n- 화제 및 주제에 대한 요약을 정리합니다.\n\n" +
		"[참여자]\n- 대한 수의 참여자와 답변을 정리합니다.\n\n" +
		"[주요 내용]\n- 대화의 핵심 내용을 직관적으로 정리합니다.\n\n" +
		"[결론 및 훈용]\n- 다음 담당이 필요한 프로젝트 활동을 정리합니다."

	defaultLecturePrompt = "[강의 부가저]\n- 강사 및 참석자의 참여 내용을 정리합니다.\n\n" +
		"[강의 약서]\n- 주요 강의 특징과 필요점을 합계합니다.\n\n" +
		"[다음 면]\n- 학생이 보서 필요한 활용 및 동기사항을 정리합니다."

	defaultMeetingPrompt = "[회의 기록]\n- 회의의 주제와 일시, 참여자를 정리합니다.\n\n" +
		"[내용 요약]\n- 회의에서 나온 주요 의경을 요약합니다.\n\n" +
		"[결정 사항]\n- 의경과 훈용사항을 가롱적으로 넣습니다."
)

const defaultCategorizePrompt = "Decide whether the text is a conversation log, a lecture " +
	"transcript, or meeting minutes. Answer with exactly one word: CONVERSATION, LECTURE, or " +
	"MEETING. If the situation resembles teaching, answer LECTURE; if it resembles a meeting, " +
	"answer MEETING; otherwise answer CONVERSATION."

var promptFiles = map[string]string{
	"CONVERSATION": "conversation.txt",
	"LECTURE":      "lecture.txt",
	"MEETING":      "meeting.txt",
}

var defaultPrompts = map[string]string{
	"CONVERSATION": defaultConversationPrompt,
	"LECTURE":      defaultLecturePrompt,
	"MEETING":      defaultMeetingPrompt,
}

// SystemPrompt returns the summarization system prompt for the given
// document type. Unknown types resolve to the CONVERSATION prompt. A
// readable non-empty file in SyspromptDir wins over the built-in text.
func (c *Config) SystemPrompt(documentType string) string {
	docType := documentType
	if _, ok := defaultPrompts[docType]; !ok {
		docType = "CONVERSATION"
	}

	if c.SyspromptDir != "" {
		path := filepath.Join(c.SyspromptDir, promptFiles[docType])
		data, err := os.ReadFile(path)
		if err == nil {
			if prompt := strings.TrimSpace(string(data)); prompt != "" {
				return prompt
			}
		} else if !os.IsNotExist(err) {
			slog.Warn("Failed to read prompt file, using built-in prompt",
				"path", path, "error", err)
		}
	}

	return defaultPrompts[docType]
}

// CategorizePrompt returns the classification system prompt, preferring
// <SyspromptDir>/categorize.txt over the built-in text.
func (c *Config) CategorizePrompt() string {
	if c.SyspromptDir != "" {
		path := filepath.Join(c.SyspromptDir, "categorize.txt")
		data, err := os.ReadFile(path)
		if err == nil {
			if prompt := strings.TrimSpace(string(data)); prompt != "" {
				return prompt
			}
		} else if !os.IsNotExist(err) {
			slog.Warn("Failed to read prompt file, using built-in prompt",
				"path", path, "error", err)
		}
	}
	return defaultCategorizePrompt
}
