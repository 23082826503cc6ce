package author

import (
	"strconv"
	"strings"

	"github.com/dverbin/phrasal/internal/editor"
	"github.com/dverbin/phrasal/internal/lesson"
)

// mediaRef points a row at the media element it edits, for audio attach.
type mediaRef struct {
	target editor.Target
	index  int
}

// draftRow is one editable line of the activity draft form.
type draftRow struct {
	label string
	value string

	// op builds the edit operation from the committed input value.
	// Nil rows are display-only.
	op func(string) editor.Op

	media     *mediaRef
	optIndex  int // option row, -1 otherwise
	itemIndex int // item row, -1 otherwise
	pairIndex int // pair row, -1 otherwise
}

func fieldRow(label, value string, op func(string) editor.Op) draftRow {
	return draftRow{label: label, value: value, op: op, optIndex: -1, itemIndex: -1, pairIndex: -1}
}

// buildRows derives the draft form rows from the current draft activity.
// Rebuilt after every committed edit so indices always match the draft.
func buildRows(d editor.Draft) []draftRow {
	a := d.Activity
	rows := []draftRow{
		fieldRow("Title", a.Title, func(v string) editor.Op {
			return editor.SetTitle{Value: v}
		}),
		fieldRow("Description", a.Description, func(v string) editor.Op {
			return editor.SetDescription{Value: v}
		}),
		fieldRow("Time estimate (min)", strconv.Itoa(a.TimeEstimate), func(v string) editor.Op {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || n < 0 {
				n = 0
			}
			return editor.SetTimeEstimate{Minutes: n}
		}),
	}

	qText := fieldRow("Question text", a.Question.Text, func(v string) editor.Op {
		return editor.SetMediaField{Target: editor.TargetQuestion, Key: editor.KeyText, Value: v}
	})
	qText.media = &mediaRef{target: editor.TargetQuestion}
	rows = append(rows, qText)

	rows = append(rows, fieldRow("Question translation", a.Question.Translation, func(v string) editor.Op {
		return editor.SetMediaField{Target: editor.TargetQuestion, Key: editor.KeyTranslation, Value: v}
	}))

	switch a.Type {
	case lesson.TypeMultipleChoice:
		for i, opt := range a.Options() {
			i := i
			marker := " "
			if opt.IsCorrect {
				marker = "*"
			}

			text := fieldRow("Option "+strconv.Itoa(i+1)+" ["+marker+"]", opt.Text, func(v string) editor.Op {
				return editor.SetMediaField{Target: editor.TargetOptions, Index: i, Key: editor.KeyText, Value: v}
			})
			text.optIndex = i
			text.media = &mediaRef{target: editor.TargetOptions, index: i}
			rows = append(rows, text)

			tr := fieldRow("  translation", opt.Translation, func(v string) editor.Op {
				return editor.SetMediaField{Target: editor.TargetOptions, Index: i, Key: editor.KeyTranslation, Value: v}
			})
			tr.optIndex = i
			rows = append(rows, tr)
		}

	case lesson.TypeFillInBlanks:
		rows = append(rows, fieldRow("Word blocks (comma separated)", strings.Join(a.WordBlocks(), ", "), func(v string) editor.Op {
			return editor.SetWordBlocks{Words: splitList(v, ",")}
		}))

	case lesson.TypeOrdering, lesson.TypeDialogue:
		for i, item := range a.Items() {
			i := i

			text := fieldRow("Item "+strconv.Itoa(i+1), item.Text, func(v string) editor.Op {
				return editor.SetMediaField{Target: editor.TargetItems, Index: i, Key: editor.KeyText, Value: v}
			})
			text.itemIndex = i
			text.media = &mediaRef{target: editor.TargetItems, index: i}
			rows = append(rows, text)

			tr := fieldRow("  translation", item.Translation, func(v string) editor.Op {
				return editor.SetMediaField{Target: editor.TargetItems, Index: i, Key: editor.KeyTranslation, Value: v}
			})
			tr.itemIndex = i
			rows = append(rows, tr)
		}

	case lesson.TypeMatchImage:
		for i, pair := range a.Pairs() {
			i := i

			text := fieldRow("Pair "+strconv.Itoa(i+1)+" phrase", pair.Text, func(v string) editor.Op {
				return editor.SetMediaField{Target: editor.TargetPairs, Index: i, Key: editor.KeyText, Value: v}
			})
			text.pairIndex = i
			text.media = &mediaRef{target: editor.TargetPairs, index: i}
			rows = append(rows, text)

			tr := fieldRow("  translation", pair.Translation, func(v string) editor.Op {
				return editor.SetMediaField{Target: editor.TargetPairs, Index: i, Key: editor.KeyTranslation, Value: v}
			})
			tr.pairIndex = i
			rows = append(rows, tr)

			img := fieldRow("  image", pair.Image, func(v string) editor.Op {
				return editor.SetMediaField{Target: editor.TargetPairs, Index: i, Key: editor.KeyImage, Value: v}
			})
			img.pairIndex = i
			rows = append(rows, img)
		}
	}

	return rows
}

// nextDifficulty cycles beginner -> intermediate -> advanced -> beginner.
func nextDifficulty(d lesson.Difficulty) lesson.Difficulty {
	switch d {
	case lesson.DifficultyBeginner:
		return lesson.DifficultyIntermediate
	case lesson.DifficultyIntermediate:
		return lesson.DifficultyAdvanced
	default:
		return lesson.DifficultyBeginner
	}
}
