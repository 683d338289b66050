package main

// catalogPlans holds the public plan catalog. Seeding is idempotent by plan name.
var catalogPlans = []planSeed{
	{
		Name:        "FitBite Slim planas",
		Description: "7 dienų svorio mažinimo planas – daug daržovių, lengvi baltymų šaltiniai, subalansuotos porcijos ir aiškus grafikas visai savaitei.",
		GoalType:    "weight_loss",
		DailyPrice:  18.9,
		Meals: []mealSeed{
			{DayOfWeek: "monday", MealType: "breakfast", Title: "Chia pudingas su avietėmis", Description: "Migdolų pieno chia, graikiškas jogurtas, avietės ir šaukštelis medaus.", Calories: 320, Protein: 18, Carbs: 38, Fats: 12},
			{DayOfWeek: "monday", MealType: "lunch", Title: "Kalakutienos salotos su kuskusu", Description: "Kalakutienos file, kuskusas, traškios salotos ir citrininis padažas.", Calories: 430, Protein: 34, Carbs: 42, Fats: 13},
			{DayOfWeek: "monday", MealType: "dinner", Title: "Kepta menkė su brokoliais", Description: "Citrinų sultimis apšlakstyta menkė, garinti brokoliai ir kiaušinių padažas.", Calories: 420, Protein: 36, Carbs: 24, Fats: 18},
			{DayOfWeek: "tuesday", MealType: "breakfast", Title: "Žalioji smuči", Description: "Špinatai, banana, kivis, avižos ir augalinis baltymų kokteilis.", Calories: 280, Protein: 22, Carbs: 32, Fats: 8},
			{DayOfWeek: "tuesday", MealType: "lunch", Title: "Mažai angliavandenių turintis burrito dubenėlis", Description: "Ant grotelių kepta vištiena, kalafiorų ryžiai, pupelės, salotos ir salsa.", Calories: 360, Protein: 33, Carbs: 28, Fats: 12},
			{DayOfWeek: "tuesday", MealType: "snack", Title: "Migdolai ir obuolys", Description: "Lengvas užkandis tarp pietų ir vakarienės.", Calories: 80, Protein: 5, Carbs: 12, Fats: 3},
		},
	},
	{
		Name:        "FitBite Maxi planas",
		Description: "Didelio kaloringumo planas orientuotas į raumenų auginimą ir energiją intensyvioms treniruotėms.",
		GoalType:    "muscle_gain",
		DailyPrice:  23.9,
		Meals: []mealSeed{
			{DayOfWeek: "monday", MealType: "breakfast", Title: "Kiaušinių omletas su varške ir avižomis", Description: "3 kiaušiniai, varškė, avižiniai blyneliai ir šilauogės.", Calories: 620, Protein: 48, Carbs: 52, Fats: 22},
			{DayOfWeek: "monday", MealType: "lunch", Title: "Jautienos steikas su bolivine balanda", Description: "Vidutiniškai keptas jautienos kepsnys, bolivinių balandų garnyras ir avokadas.", Calories: 720, Protein: 55, Carbs: 46, Fats: 32},
			{DayOfWeek: "monday", MealType: "dinner", Title: "Lašiša su saldžiąja bulve", Description: "Kepta lašiša su saldžiąja bulve ir šparagais.", Calories: 610, Protein: 44, Carbs: 42, Fats: 28},
			{DayOfWeek: "tuesday", MealType: "snack", Title: "Kreminis riešutų kokteilis", Description: "Graikiškas jogurtas, riešutų sviestas, bananai ir išrūgų baltymai.", Calories: 420, Protein: 32, Carbs: 38, Fats: 18},
			{DayOfWeek: "tuesday", MealType: "lunch", Title: "Kalakutiena su pilno grūdo makaronais", Description: "Kalakutienos faršas, pomidorų padažas ir pilno grūdo makaronai.", Calories: 680, Protein: 50, Carbs: 60, Fats: 20},
		},
	},
	{
		Name:        "FitBite Smart planas",
		Description: "Subalansuotas kasdienės mitybos planas su lengvu kalorijų deficitu – idealus norintiems palaikyti sveiką mitybą.",
		GoalType:    "balanced",
		DailyPrice:  20.5,
		Meals: []mealSeed{
			{DayOfWeek: "monday", MealType: "breakfast", Title: "Graikiško jogurto dubenėlis", Description: "Graikiškas jogurtas, granola, šilauogės ir linų sėmenys.", Calories: 380, Protein: 28, Carbs: 42, Fats: 12},
			{DayOfWeek: "monday", MealType: "lunch", Title: "Viduržemio jūros bolivinių balandų salotos", Description: "Bolivinės balandos, feta, alyvuogės, pomidorai ir citrininis padažas.", Calories: 520, Protein: 24, Carbs: 58, Fats: 16},
			{DayOfWeek: "monday", MealType: "dinner", Title: "Vištiena su avinžirnių troškiniu", Description: "Vištienos krūtinėlė, avinžirniai, pomidorų ir špinatų troškinys.", Calories: 540, Protein: 46, Carbs: 48, Fats: 18},
			{DayOfWeek: "tuesday", MealType: "snack", Title: "Varškės kremas su braškėmis", Description: "Lengvas baltyminis užkandis vakare.", Calories: 210, Protein: 24, Carbs: 18, Fats: 6},
		},
	},
	{
		Name:        "FitBite Vegetarų planas",
		Description: "Subalansuotas vegetariškas meniu – optimalus baltymų ir skaidulų balansas be mėsos produktų.",
		GoalType:    "vegetarian",
		DailyPrice:  19.2,
		Meals: []mealSeed{
			{DayOfWeek: "monday", MealType: "breakfast", Title: "Tofu kiaušinienė su pilno grūdo skrebučiais", Description: "Šilto tofu kiaušinienė su špinatais ir pomidorais.", Calories: 360, Protein: 24, Carbs: 30, Fats: 14},
			{DayOfWeek: "monday", MealType: "lunch", Title: "Buddha dubenėlis", Description: "Bolivinės balandos, edamame, avokadas, keptos daržovės ir tahini padažas.", Calories: 540, Protein: 28, Carbs: 62, Fats: 18},
			{DayOfWeek: "monday", MealType: "dinner", Title: "Lęšių troškinys su kokosų pienu", Description: "Raudonųjų lęšių, kokosų pieno ir daržovių troškinys su rudaisiais ryžiais.", Calories: 520, Protein: 26, Carbs: 68, Fats: 16},
			{DayOfWeek: "tuesday", MealType: "snack", Title: "Humusas su daržovių lazdelėmis", Description: "Klasikinis humusas ir traškios daržovės.", Calories: 210, Protein: 10, Carbs: 24, Fats: 9},
		},
	},
	{
		Name:        "FitBite Boost planas",
		Description: "Energingas planas sukurtas didesniam krūviui, HIIT treniruotėms ir ilgoms darbo dienoms – maksimali energija visai dienai.",
		GoalType:    "performance",
		DailyPrice:  22.8,
		Meals: []mealSeed{
			{DayOfWeek: "monday", MealType: "breakfast", Title: "Baltyminis glotnutis", Description: "Bananas, mėlynės, avižos ir augalinis baltymų mišinys.", Calories: 420, Protein: 34, Carbs: 48, Fats: 12},
			{DayOfWeek: "monday", MealType: "lunch", Title: "Kario vištiena su rudaisiais ryžiais", Description: "Baltymų ir kompleksinių angliavandenių bomba prieš treniruotę.", Calories: 640, Protein: 46, Carbs: 70, Fats: 18},
			{DayOfWeek: "monday", MealType: "pre-workout", Title: "Datulės ir riešutų sviestas", Description: "Greitai įsisavinami angliavandeniai ir sveikieji riebalai prieš treniruotę.", Calories: 210, Protein: 8, Carbs: 32, Fats: 8},
			{DayOfWeek: "monday", MealType: "dinner", Title: "Jautienos stir-fry su daržovėmis", Description: "Greitas wok patiekalas su gausiais baltymais atsigavimui.", Calories: 560, Protein: 42, Carbs: 46, Fats: 20},
		},
	},
}
