package survey

import (
	"strings"
	"testing"

	"fitbite-be/internal/entity"
)

func fullProgressAnswers() []Answer {
	return []Answer{
		{QuestionId: "overall_wellbeing", Value: 4},
		{QuestionId: "plan_adherence", Value: float64(3)},
		{QuestionId: "satiety_level", Value: "5"},
		{QuestionId: "main_challenge", Value: "Porcijų dydžiai netinka"},
		{QuestionId: "support_need", Value: []interface{}{"Greitų patiekalų idėjų", "Aiškesnio apsipirkimo plano"}},
		{QuestionId: "progress_note", Value: "Jaučiuosi puikiai."},
	}
}

func replaceAnswer(answers []Answer, id string, value interface{}) []Answer {
	out := make([]Answer, len(answers))
	copy(out, answers)
	for i := range out {
		if out[i].QuestionId == id {
			out[i].Value = value
		}
	}
	return out
}

func TestValidateAnswersHappyPath(t *testing.T) {
	validated, err := ValidateAnswers(entity.SurveyTypeProgress, fullProgressAnswers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// JSON numeric shapes all normalize to int.
	if got := validated["overall_wellbeing"]; got != 4 {
		t.Errorf("overall_wellbeing = %v (%T), want 4", got, got)
	}
	if got := validated["plan_adherence"]; got != 3 {
		t.Errorf("plan_adherence = %v (%T), want 3", got, got)
	}
	if got := validated["satiety_level"]; got != 5 {
		t.Errorf("satiety_level = %v (%T), want 5", got, got)
	}

	items, ok := validated["support_need"].([]string)
	if !ok || len(items) != 2 {
		t.Errorf("support_need = %v, want two-item string list", validated["support_need"])
	}
}

func TestValidateAnswersMissingQuestions(t *testing.T) {
	answers := []Answer{{QuestionId: "overall_wellbeing", Value: 4}}

	_, err := ValidateAnswers(entity.SurveyTypeProgress, answers)
	if err == nil {
		t.Fatal("expected error for missing answers")
	}
	if !strings.Contains(err.Error(), "trūksta atsakymų klausimams") {
		t.Errorf("err = %v, want missing-answers message", err)
	}
	if !strings.Contains(err.Error(), "plan_adherence") {
		t.Errorf("err = %v, should list the missing question ids", err)
	}
}

func TestValidateAnswersUnknownId(t *testing.T) {
	answers := append(fullProgressAnswers(), Answer{QuestionId: "netikras_id", Value: 1})

	_, err := ValidateAnswers(entity.SurveyTypeProgress, answers)
	if err == nil {
		t.Fatal("expected error for unknown question id")
	}
}

func TestValidateAnswersValueShapes(t *testing.T) {
	tests := []struct {
		name       string
		questionId string
		value      interface{}
		wantErr    bool
	}{
		{name: "scale below range", questionId: "overall_wellbeing", value: 0, wantErr: true},
		{name: "scale above range", questionId: "overall_wellbeing", value: 6, wantErr: true},
		{name: "scale not numeric", questionId: "overall_wellbeing", value: "daug", wantErr: true},
		{name: "scale at max", questionId: "overall_wellbeing", value: 5},
		{name: "single choice unknown option", questionId: "main_challenge", value: "Visai kitas variantas", wantErr: true},
		{name: "single choice not a string", questionId: "main_challenge", value: 7, wantErr: true},
		{name: "multi choice empty list", questionId: "support_need", value: []interface{}{}, wantErr: true},
		{name: "multi choice unknown item", questionId: "support_need", value: []interface{}{"Nesamas variantas"}, wantErr: true},
		{name: "multi choice plain string slice", questionId: "support_need", value: []string{"Greitų patiekalų idėjų"}},
		{name: "text not a string", questionId: "progress_note", value: 12, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := replaceAnswer(fullProgressAnswers(), tt.questionId, tt.value)
			_, err := ValidateAnswers(entity.SurveyTypeProgress, answers)

			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateAnswersNilTextBecomesEmpty(t *testing.T) {
	answers := replaceAnswer(fullProgressAnswers(), "progress_note", nil)

	validated, err := ValidateAnswers(entity.SurveyTypeProgress, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := validated["progress_note"]; got != "" {
		t.Errorf("progress_note = %v, want empty string", got)
	}
}

func TestQuestionsForCatalogs(t *testing.T) {
	progress := QuestionsFor(entity.SurveyTypeProgress)
	final := QuestionsFor(entity.SurveyTypeFinal)

	if len(progress) != 6 {
		t.Errorf("progress catalog = %d questions, want 6", len(progress))
	}
	if len(final) != 7 {
		t.Errorf("final catalog = %d questions, want 7", len(final))
	}

	for _, q := range append(progress, final...) {
		if q.Id == "" || q.Prompt == "" {
			t.Errorf("question %+v missing id or prompt", q)
		}
		if q.Type == QuestionScale && q.ScaleMax <= q.ScaleMin {
			t.Errorf("question %s has invalid scale bounds", q.Id)
		}
		if (q.Type == QuestionSingleChoice || q.Type == QuestionMultiChoice) && len(q.Options) == 0 {
			t.Errorf("question %s has no options", q.Id)
		}
	}
}
