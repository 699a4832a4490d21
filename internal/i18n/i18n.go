package i18n

// Translation is the static string table the UI renders from. There is no
// translation infrastructure beyond this table; "fr" and "ar" are the only
// languages.
type Translation struct {
	RoleProfessor    string `json:"role_professor"`
	RoleStudent      string `json:"role_student"`
	CreateQuiz       string `json:"create_quiz"`
	ViewResults      string `json:"view_results"`
	TakeQuiz         string `json:"take_quiz"`
	Welcome          string `json:"welcome"`
	Question         string `json:"question"`
	Options          string `json:"options"`
	Points           string `json:"points"`
	AddQuestion      string `json:"add_question"`
	PublishQuiz      string `json:"publish_quiz"`
	StudentName      string `json:"student_name"`
	StudentPhone     string `json:"student_phone"`
	StartQuiz        string `json:"start_quiz"`
	Submit           string `json:"submit"`
	Score            string `json:"score"`
	TotalSubmissions string `json:"total_submissions"`
	AverageScore     string `json:"average_score"`
	GenerateWithAI   string `json:"generate_with_ai"`
	TopicPrompt      string `json:"topic_prompt"`
	Generating       string `json:"generating"`
	CorrectAnswer    string `json:"correct_answer"`
	TypeSingle       string `json:"type_single"`
	TypeMultiple     string `json:"type_multiple"`
	Delete           string `json:"delete"`
	Back             string `json:"back"`
	Dashboard        string `json:"dashboard"`
	NoQuizActive     string `json:"no_quiz_active"`
	QuestionText     string `json:"question_text"`
	OptionText       string `json:"option_text"`
	IsCorrect        string `json:"is_correct"`
	Required         string `json:"required"`
}

var tables = map[string]Translation{
	"fr": {
		RoleProfessor:    "Professeur",
		RoleStudent:      "Étudiant",
		CreateQuiz:       "Créer un quiz",
		ViewResults:      "Voir les résultats",
		TakeQuiz:         "Passer le quiz",
		Welcome:          "Bienvenue sur KoboQuiz",
		Question:         "Question",
		Options:          "Options",
		Points:           "Points",
		AddQuestion:      "Ajouter une question",
		PublishQuiz:      "Publier le quiz",
		StudentName:      "Nom complet",
		StudentPhone:     "Téléphone",
		StartQuiz:        "Commencer",
		Submit:           "Soumettre",
		Score:            "Score",
		TotalSubmissions: "Soumissions totales",
		AverageScore:     "Score moyen",
		GenerateWithAI:   "Générer avec l'IA",
		TopicPrompt:      "Sujet de la question...",
		Generating:       "Génération en cours...",
		CorrectAnswer:    "Bonne réponse",
		TypeSingle:       "Choix unique",
		TypeMultiple:     "Choix multiple",
		Delete:           "Supprimer",
		Back:             "Retour",
		Dashboard:        "Tableau de bord",
		NoQuizActive:     "Aucun quiz actif pour le moment",
		QuestionText:     "Texte de la question",
		OptionText:       "Texte de l'option",
		IsCorrect:        "Correct",
		Required:         "Champ obligatoire",
	},
	"ar": {
		RoleProfessor:    "أستاذ",
		RoleStudent:      "طالب",
		CreateQuiz:       "إنشاء اختبار",
		ViewResults:      "عرض النتائج",
		TakeQuiz:         "ابدأ الاختبار",
		Welcome:          "مرحبا بكم في كوبوكويز",
		Question:         "سؤال",
		Options:          "خيارات",
		Points:           "نقاط",
		AddQuestion:      "أضف سؤالا",
		PublishQuiz:      "نشر الاختبار",
		StudentName:      "الاسم الكامل",
		StudentPhone:     "الهاتف",
		StartQuiz:        "ابدأ",
		Submit:           "إرسال",
		Score:            "النتيجة",
		TotalSubmissions: "مجموع المشاركات",
		AverageScore:     "متوسط النتائج",
		GenerateWithAI:   "توليد بالذكاء الاصطناعي",
		TopicPrompt:      "موضوع السؤال...",
		Generating:       "جاري التوليد...",
		CorrectAnswer:    "الإجابة الصحيحة",
		TypeSingle:       "اختيار واحد",
		TypeMultiple:     "اختيار متعدد",
		Delete:           "حذف",
		Back:             "رجوع",
		Dashboard:        "لوحة النتائج",
		NoQuizActive:     "لا يوجد اختبار نشط حاليا",
		QuestionText:     "نص السؤال",
		OptionText:       "نص الخيار",
		IsCorrect:        "صحيح",
		Required:         "حقل إجباري",
	},
}

// Get returns the string table for lang ("fr" or "ar").
func Get(lang string) (Translation, bool) {
	t, ok := tables[lang]
	return t, ok
}
