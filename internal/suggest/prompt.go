package suggest

import (
	"fmt"
	"strings"

	"github.com/dverbin/phrasal/internal/lesson"
)

const suggestSystemPrompt = `You are a language teaching assistant helping an author build quiz activities for a language lesson. You produce one complete activity draft at a time. Every phrase you write carries both the target-language text and its translation.`

func buildSuggestUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Lesson: %s\n", input.LessonTitle))
	if input.LessonDescription != "" {
		b.WriteString(fmt.Sprintf("Description: %s\n", input.LessonDescription))
	}
	if input.Level != "" {
		b.WriteString(fmt.Sprintf("Level: %s\n", input.Level))
	}

	if len(input.Objectives) > 0 {
		b.WriteString("\nObjectives:\n")
		for _, o := range input.Objectives {
			b.WriteString(fmt.Sprintf("- %s\n", o))
		}
	}

	if len(input.ExistingTitles) > 0 {
		b.WriteString("\nActivities already in the lesson (do not repeat these):\n")
		for _, t := range input.ExistingTitles {
			b.WriteString(fmt.Sprintf("- %s\n", t))
		}
	}

	b.WriteString(fmt.Sprintf("\nActivity type to create: %s\n", input.Type))
	if input.Topic != "" {
		b.WriteString(fmt.Sprintf("Topic: %s\n", input.Topic))
	}

	b.WriteString("\nInstructions:\n")
	b.WriteString(typeInstructions(input.Type))
	b.WriteString(`
Keep the activity short and focused. Give every phrase a natural translation. Set difficulty to match the lesson level and estimate the time in minutes (1-5).`)

	return b.String()
}

func typeInstructions(t lesson.ActivityType) string {
	switch t {
	case lesson.TypeMultipleChoice:
		return `Create a multiple-choice question with 3-4 options. Exactly one option is correct. Distractors should be plausible but clearly wrong to a learner who understood the material.`
	case lesson.TypeFillInBlanks:
		return `Create a fill-in-the-blanks sentence. Mark each blank by wrapping the correct word in curly braces, e.g. "Ek {hou} van koffie". Use 1-3 blanks. Provide a word block pool containing every correct word plus 2-3 distractor words.`
	case lesson.TypeOrdering:
		return `Create an ordering exercise: 3-5 phrases the learner arranges into the correct sequence. List the items in their correct order.`
	case lesson.TypeDialogue:
		return `Create a short dialogue of 3-5 turns between two speakers. List the turns in order.`
	case lesson.TypeMatchImage:
		return `Create a matching exercise with 3-4 pairs. Each pair is a phrase and a short image description the learner matches it to.`
	}
	return `Create one activity appropriate for the lesson.`
}
