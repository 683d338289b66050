package survey

import "fitbite-be/internal/entity"

type QuestionType string

const (
	QuestionScale        QuestionType = "scale"
	QuestionSingleChoice QuestionType = "single_choice"
	QuestionMultiChoice  QuestionType = "multi_choice"
	QuestionText         QuestionType = "text"
)

// Question is one entry of the static per-type catalog. Catalogs are
// configuration data, not persisted rows.
type Question struct {
	Id            string       `json:"id"`
	Prompt        string       `json:"prompt"`
	Type          QuestionType `json:"type"`
	ScaleMin      int          `json:"scale_min,omitempty"`
	ScaleMax      int          `json:"scale_max,omitempty"`
	ScaleMinLabel string       `json:"scale_min_label,omitempty"`
	ScaleMaxLabel string       `json:"scale_max_label,omitempty"`
	Options       []string     `json:"options,omitempty"`
	HelpText      string       `json:"help_text,omitempty"`
}

var progressQuestions = []Question{
	{
		Id:            "overall_wellbeing",
		Prompt:        "Kaip vertinate bendrą savijautą ir energijos lygį pastarosiomis dienomis?",
		Type:          QuestionScale,
		ScaleMin:      1,
		ScaleMax:      5,
		ScaleMinLabel: "Labai prasta",
		ScaleMaxLabel: "Puiki",
	},
	{
		Id:            "plan_adherence",
		Prompt:        "Kiek lengva laikytis suplanuotų patiekalų ir užkandžių grafiko?",
		Type:          QuestionScale,
		ScaleMin:      1,
		ScaleMax:      5,
		ScaleMinLabel: "Labai sudėtinga",
		ScaleMaxLabel: "Labai paprasta",
	},
	{
		Id:            "satiety_level",
		Prompt:        "Kaip vertinate sotumo jausmą po valgių?",
		Type:          QuestionScale,
		ScaleMin:      1,
		ScaleMax:      5,
		ScaleMinLabel: "Nuolat alksta",
		ScaleMaxLabel: "Visada pakanka",
	},
	{
		Id:     "main_challenge",
		Prompt: "Kas šiuo metu didžiausias iššūkis laikantis plano?",
		Type:   QuestionSingleChoice,
		Options: []string{
			"Trūksta laiko pasiruošti patiekalus",
			"Norisi daugiau skonių ar įvairovės",
			"Porcijų dydžiai netinka",
			"Motyvacijos ar palaikymo stoka",
			"Kita (įrašysiu komentaruose)",
		},
	},
	{
		Id:     "support_need",
		Prompt: "Kokių papildomų išteklių ar pagalbos norėtumėte artimiausioms dienoms?",
		Type:   QuestionMultiChoice,
		Options: []string{
			"Greitų patiekalų idėjų",
			"Receptų su mažiau ingredientų",
			"Motyvacijos palaikymo patarimų",
			"Aiškesnio apsipirkimo plano",
			"Kitų (įrašysiu komentaruose)",
		},
		HelpText: "Galite pasirinkti kelis variantus",
	},
	{
		Id:       "progress_note",
		Prompt:   "Pasidalinkite įžvalgomis, pastebėjimais ar klausimais dietologui.",
		Type:     QuestionText,
		HelpText: "Galite palikti tuščią, jeigu šiuo metu pastabų neturite.",
	},
}

var finalQuestions = []Question{
	{
		Id:            "result_satisfaction",
		Prompt:        "Kaip vertinate pasiektus rezultatus užbaigus planą?",
		Type:          QuestionScale,
		ScaleMin:      1,
		ScaleMax:      5,
		ScaleMinLabel: "Nepatenkintas",
		ScaleMaxLabel: "Labai patenkintas",
	},
	{
		Id:            "meal_quality",
		Prompt:        "Kaip vertinate patiekalų skonį, kokybę ir pateikimą?",
		Type:          QuestionScale,
		ScaleMin:      1,
		ScaleMax:      5,
		ScaleMinLabel: "Silpnai",
		ScaleMaxLabel: "Puikiai",
	},
	{
		Id:            "routine_fit",
		Prompt:        "Kiek mitybos planas dera su jūsų dienos ritmu ir įpročiais?",
		Type:          QuestionScale,
		ScaleMin:      1,
		ScaleMax:      5,
		ScaleMinLabel: "Visai nederėjo",
		ScaleMaxLabel: "Puikiai pritaikytas",
	},
	{
		Id:     "support_needed",
		Prompt: "Ko labiausiai norėtumėte kitame mitybos plane?",
		Type:   QuestionMultiChoice,
		Options: []string{
			"Daugiau skirtingų receptų ir skonių",
			"Paprasčiau paruošiamų patiekalų",
			"Individualizuotų pasiūlymų pagal alergijas / apribojimus",
			"Detalesnio apsipirkimo ir paruošimo plano",
			"Tolesnio dietologo ar trenerio palaikymo",
			"Kita (įrašysiu komentaruose)",
		},
		HelpText: "Galite pasirinkti kelis variantus",
	},
	{
		Id:       "goal_progress",
		Prompt:   "Kokį pokytį pastebėjote (svorio, savijautos, gyvenimo būdo)?",
		Type:     QuestionText,
		HelpText: "Įvardykite konkrečius pokyčius ar skaičius, jei galite.",
	},
	{
		Id:       "feedback",
		Prompt:   "Papildomi komentarai, pasiūlymai ar klausimai mūsų komandai.",
		Type:     QuestionText,
		HelpText: "Padėkite mums dar labiau pagerinti planą ateityje.",
	},
	{
		Id:     "next_goals",
		Prompt: "Kokį kitą tikslą norėtumėte pasiekti su mūsų pagalba?",
		Type:   QuestionSingleChoice,
		Options: []string{
			"Toliau optimizuoti dabartinį svorį",
			"Didinti raumenų masę / sportinius rezultatus",
			"Pagerinti bendrą savijautą ir energiją",
			"Sukaupti žinių savarankiškam planavimui",
			"Dar nežinau – laukiu profesionalo rekomendacijos",
		},
	},
}

// QuestionsFor returns the immutable catalog for a survey type.
func QuestionsFor(surveyType entity.SurveyType) []Question {
	if surveyType == entity.SurveyTypeProgress {
		return progressQuestions
	}
	return finalQuestions
}
