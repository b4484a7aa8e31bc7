package knowledge

// tables.go holds the built-in clinical tables: nine specialties, sixteen
// red flags and the wellness pattern library.  Everything here is data; the
// matching logic lives in internal/routing.  Specialty priorities follow
// clinical frequency: the most common cause of a symptom wins ties.

func builtinSpecialties() []Specialty {
	return []Specialty{
		{
			Name:        PrimaryCare,
			DisplayName: "Primary Care Physician",
			Description: "First point of contact for general health concerns",
			TreatsConditions: []string{
				"General health checkups",
				"Acute illnesses (colds, flu, infections)",
				"Chronic disease management",
				"Preventive care and screenings",
				"Referrals to specialists",
			},
			Keywords: []string{
				"fever", "infection", "cold", "flu", "cough", "sore", "throat",
				"unwell", "sick", "ache", "checkup",
			},
			TypicalTests:   []string{"Basic blood work (CBC, CMP)", "Urinalysis", "Blood pressure", "Physical exam"},
			WhenToSee:      "Start here for most health concerns; your PCP can evaluate and refer to specialists if needed.",
			DefaultUrgency: TierRoutine,
			Priority:       1,
		},
		{
			Name:        Endocrinologist,
			DisplayName: "Endocrinologist",
			Description: "Hormone and metabolic disorders specialist",
			TreatsConditions: []string{
				"Thyroid disorders (hypothyroidism, hyperthyroidism, Hashimoto's)",
				"Diabetes and prediabetes",
				"Adrenal disorders",
				"Metabolic syndrome",
				"PCOS and hormone imbalances",
				"Osteoporosis",
			},
			Keywords: []string{
				"fatigue", "tired", "weight", "gain", "loss", "thyroid", "heat",
				"intolerance", "hair", "thirst", "urination", "sugar", "cravings",
				"meals", "hormone", "periods", "libido", "metabolism", "brain", "fog",
			},
			TypicalTests:   []string{"TSH, T3, T4, thyroid antibodies", "Fasting glucose, HbA1c, insulin", "Cortisol", "Sex hormones"},
			WhenToSee:      "If you suspect hormone imbalance, thyroid issues, diabetes or metabolic problems.",
			DefaultUrgency: TierRoutine,
			Priority:       2,
		},
		{
			Name:        Gastroenterologist,
			DisplayName: "Gastroenterologist",
			Description: "Digestive system and gut health specialist",
			TreatsConditions: []string{
				"IBS and IBD (Crohn's, ulcerative colitis)",
				"GERD (acid reflux)",
				"Celiac disease and food intolerances",
				"Liver and gallbladder disease",
				"Ulcers",
			},
			Keywords: []string{
				"bloating", "gas", "abdominal", "stomach", "cramping", "diarrhea",
				"constipation", "stool", "reflux", "heartburn", "nausea", "vomiting",
				"swallowing", "jaundice", "digestion",
			},
			TypicalTests:   []string{"Colonoscopy", "Endoscopy", "Stool tests", "Breath tests (SIBO, lactose)", "Liver function tests"},
			WhenToSee:      "If digestive issues persist beyond 2-4 weeks or interfere with daily life.",
			DefaultUrgency: TierRoutine,
			Priority:       3,
		},
		{
			Name:        Cardiologist,
			DisplayName: "Cardiologist",
			Description: "Heart and cardiovascular system specialist",
			TreatsConditions: []string{
				"High blood pressure",
				"Coronary artery disease",
				"Heart failure",
				"Arrhythmias",
				"High cholesterol",
			},
			Keywords: []string{
				"chest", "pressure", "breath", "shortness", "palpitations",
				"heartbeat", "racing", "swelling", "legs", "fainting", "dizziness",
				"exertion", "cholesterol",
			},
			TypicalTests:   []string{"EKG", "Echocardiogram", "Stress test", "Holter monitor", "Lipid panel"},
			WhenToSee:      "For chest pain, irregular heartbeat, or blood pressure and cholesterol that are hard to control.",
			DefaultUrgency: TierSoon,
			Priority:       4,
		},
		{
			Name:        Dermatologist,
			DisplayName: "Dermatologist",
			Description: "Skin, hair, and nail specialist",
			TreatsConditions: []string{
				"Acne, eczema and psoriasis",
				"Skin cancer screening",
				"Hair loss (alopecia)",
				"Nail disorders",
				"Fungal infections",
			},
			Keywords: []string{
				"rash", "itching", "skin", "acne", "mole", "moles", "nail", "nails",
				"dryness", "flaking", "lesion", "eczema", "psoriasis",
			},
			TypicalTests:   []string{"Skin biopsy", "Patch testing", "Dermoscopy", "Fungal cultures"},
			WhenToSee:      "For skin concerns that resist over-the-counter treatment, suspicious moles or hair loss.",
			DefaultUrgency: TierRoutine,
			Priority:       5,
		},
		{
			Name:        Neurologist,
			DisplayName: "Neurologist",
			Description: "Brain, spinal cord, and nervous system specialist",
			TreatsConditions: []string{
				"Migraines and headaches",
				"Epilepsy and seizures",
				"Neuropathy",
				"Stroke and TIA follow-up",
				"Movement disorders",
			},
			Keywords: []string{
				"headache", "headaches", "migraine", "numbness", "tingling",
				"weakness", "tremors", "seizure", "seizures", "memory", "confusion",
				"vertigo", "vision",
			},
			TypicalTests:   []string{"MRI or CT scan", "EEG", "EMG nerve conduction", "Neuropsych testing"},
			WhenToSee:      "For severe headaches, numbness or tingling, seizures, or memory issues.",
			DefaultUrgency: TierSoon,
			Priority:       6,
		},
		{
			Name:        Psychiatrist,
			DisplayName: "Psychiatrist",
			Description: "Mental health and psychiatric medication specialist",
			TreatsConditions: []string{
				"Depression and anxiety disorders",
				"Bipolar disorder",
				"PTSD and OCD",
				"ADHD",
				"Sleep disorders with psychiatric causes",
			},
			Keywords: []string{
				"sadness", "hopelessness", "anxiety", "panic", "mood", "swings",
				"depression", "insomnia", "concentration", "irritability",
			},
			TypicalTests:   []string{"Psychiatric evaluation", "PHQ-9 and GAD-7 questionnaires", "Labs to rule out medical causes"},
			WhenToSee:      "If mental health symptoms interfere with daily life or medication management is needed.",
			DefaultUrgency: TierRoutine,
			Priority:       7,
		},
		{
			Name:        Rheumatologist,
			DisplayName: "Rheumatologist",
			Description: "Autoimmune and joint disease specialist",
			TreatsConditions: []string{
				"Rheumatoid arthritis",
				"Lupus",
				"Fibromyalgia",
				"Gout",
				"Psoriatic arthritis",
			},
			Keywords: []string{
				"joint", "joints", "stiffness", "autoimmune", "inflammation",
				"arthritis", "fevers", "raynaud", "muscle",
			},
			TypicalTests:   []string{"ANA", "Rheumatoid factor", "Anti-CCP", "ESR and CRP", "Joint X-rays"},
			WhenToSee:      "If joint pain persists beyond six weeks or affects multiple joints.",
			DefaultUrgency: TierRoutine,
			Priority:       8,
		},
		{
			Name:        Hematologist,
			DisplayName: "Hematologist",
			Description: "Blood disorder specialist",
			TreatsConditions: []string{
				"Anemia",
				"Clotting disorders",
				"Thrombocytopenia",
				"Blood cancer evaluation",
			},
			Keywords: []string{
				"anemia", "bruising", "bleeding", "lymph", "nodes", "clots",
				"platelets", "hemoglobin",
			},
			TypicalTests:   []string{"CBC", "Iron panel", "B12 and folate", "Coagulation studies"},
			WhenToSee:      "If blood tests show significant abnormalities or you bruise and bleed easily.",
			DefaultUrgency: TierRoutine,
			Priority:       9,
		},
	}
}

// builtinRedFlags is ordered by severity within each tier; Priority makes
// that ordering explicit instead of relying on slice position.
func builtinRedFlags() []RedFlag {
	return []RedFlag{
		// EMERGENCY: call 911 now.
		{
			Trigger:   "chest pain",
			Tier:      TierEmergency,
			Reason:    "Possible heart attack (myocardial infarction)",
			Action:    "Call 911 immediately. Do not drive yourself. This could be life-threatening.",
			Specialty: Cardiologist,
			Priority:  1,
		},
		{
			Trigger:   "severe headache",
			Tier:      TierEmergency,
			Reason:    "Possible brain aneurysm, stroke, or hemorrhage",
			Action:    "Call 911 immediately. A sudden severe headache can be a stroke or aneurysm.",
			Specialty: Neurologist,
			Priority:  2,
		},
		{
			Trigger:   "difficulty breathing",
			Tier:      TierEmergency,
			Reason:    "Possible heart failure, pulmonary embolism, or severe respiratory issue",
			Action:    "Call 911 immediately. Breathing difficulty at rest is life-threatening.",
			Specialty: Cardiologist,
			Priority:  3,
		},
		{
			Trigger:   "sudden weakness",
			Tier:      TierEmergency,
			Reason:    "Possible stroke; one-sided weakness or numbness is time-critical",
			Action:    "Call 911 immediately. Stroke treatment has a 3-4.5 hour window.",
			Specialty: Neurologist,
			Priority:  4,
		},
		{
			Trigger:  "loss of consciousness",
			Tier:     TierEmergency,
			Reason:   "Possible stroke, brain injury, or severe metabolic issue",
			Action:   "Call 911 immediately. Altered mental status is a medical emergency.",
			Priority: 5,
		},
		{
			Trigger:   "severe abdominal pain",
			Tier:      TierEmergency,
			Reason:    "Possible appendicitis, ruptured organ, or internal bleeding",
			Action:    "Go to the emergency room immediately. Do not eat or drink.",
			Specialty: Gastroenterologist,
			Priority:  6,
		},
		{
			Trigger:   "vomiting blood",
			Tier:      TierEmergency,
			Reason:    "Possible GI bleed or vascular problem",
			Action:    "Go to the emergency room immediately.",
			Specialty: Gastroenterologist,
			Priority:  7,
		},
		{
			Trigger:   "suicidal",
			Tier:      TierEmergency,
			Reason:    "Psychiatric emergency requiring immediate intervention",
			Action:    "Call 911 or the Suicide and Crisis Lifeline at 988. You are not alone.",
			Specialty: Psychiatrist,
			Priority:  8,
		},
		// URGENT: see a doctor within 24 hours.
		{
			Trigger:   "unexplained weight loss",
			Tier:      TierUrgent,
			Reason:    "Possible cancer, thyroid disorder, diabetes, or serious metabolic issue",
			Action:    "See a doctor within 24 hours. This requires immediate evaluation.",
			Specialty: Endocrinologist,
			Priority:  9,
		},
		{
			Trigger:   "high fever",
			Tier:      TierUrgent,
			Reason:    "Possible serious infection requiring antibiotics or hospitalization",
			Action:    "See a doctor within 24 hours. A fever above 103F or lasting days needs evaluation.",
			Specialty: PrimaryCare,
			Priority:  10,
		},
		{
			Trigger:  "vision loss",
			Tier:     TierUrgent,
			Reason:   "Possible retinal detachment, stroke, or serious eye condition",
			Action:   "See an ophthalmologist or go to the ER within 24 hours.",
			Priority: 11,
		},
		{
			Trigger:   "growing lump",
			Tier:      TierUrgent,
			Reason:    "Needs evaluation to rule out cancer",
			Action:    "See a doctor within 24-48 hours for evaluation and possible biopsy.",
			Specialty: PrimaryCare,
			Priority:  12,
		},
		{
			Trigger:   "blood in stool",
			Tier:      TierUrgent,
			Reason:    "Possible GI bleeding from ulcer, polyp, or cancer",
			Action:    "See a doctor within 24 hours. GI bleeding requires urgent evaluation.",
			Specialty: Gastroenterologist,
			Priority:  13,
		},
		// SOON: within one week.
		{
			Trigger:   "persistent pain",
			Tier:      TierSoon,
			Reason:    "Chronic pain may indicate an underlying condition needing treatment",
			Action:    "Schedule an appointment within one week for evaluation.",
			Specialty: PrimaryCare,
			Priority:  14,
		},
		{
			Trigger:   "changing mole",
			Tier:      TierSoon,
			Reason:    "Possible melanoma or skin cancer",
			Action:    "See a dermatologist within one week. Skin cancer is highly treatable when caught early.",
			Specialty: Dermatologist,
			Priority:  15,
		},
		{
			Trigger:   "persistent cough",
			Tier:      TierSoon,
			Reason:    "Could be infection, asthma, COPD, or rarely lung cancer",
			Action:    "See a doctor within one week, especially if you smoke or used to.",
			Specialty: PrimaryCare,
			Priority:  16,
		},
	}
}

func builtinPatterns() []Pattern {
	return []Pattern{
		{
			Name:       "Vitamin D Deficiency",
			Indicators: []string{"fatigue", "mood", "depression", "bones", "weakness"},
			Explanation: "Vitamin D is synthesized from sunlight; an indoor lifestyle drops levels. " +
				"Low vitamin D shows up as fatigue, low mood, weak immune function and poor bone health.",
			Recommendation: PatternRecommendation{
				Supplement: "Vitamin D3",
				Dose:       "2000-4000 IU",
				Timing:     "With breakfast",
				Lifestyle:  "Get 15-20 minutes of morning sunlight daily",
			},
			Timeline: "3-4 weeks to feel improvement",
		},
		{
			Name:       "Magnesium Deficiency",
			Indicators: []string{"insomnia", "anxiety", "tension", "irritability", "cramps"},
			Explanation: "Poor sleep and high stress deplete magnesium, the body's relaxation mineral, " +
				"and high caffeine intake blocks its absorption. Without it the nervous system stays activated.",
			Recommendation: PatternRecommendation{
				Supplement: "Magnesium Glycinate",
				Dose:       "300-400mg",
				Timing:     "At bedtime, away from calcium-rich foods",
				Lifestyle:  "Cut caffeine after 2pm, wind down 30 minutes before bed",
			},
			Timeline: "1-2 weeks for sleep improvement",
		},
		{
			Name:       "B Vitamin Depletion",
			Indicators: []string{"fatigue", "fog", "memory", "tingling", "irritability"},
			Explanation: "A processed diet and chronic stress burn through B vitamins, which drive " +
				"cellular energy production. The result is fatigue, brain fog and poor concentration.",
			Recommendation: PatternRecommendation{
				Supplement: "B-Complex (methylated forms)",
				Dose:       "One capsule",
				Timing:     "With breakfast",
				Lifestyle:  "Add leafy greens, eggs and quality protein to meals",
			},
			Timeline: "2-3 weeks for energy improvement",
		},
		{
			Name:       "Insulin Resistance",
			Indicators: []string{"cravings", "sugar", "fatigue", "meals", "weight", "belly"},
			Explanation: "Constant snacking and refined carbs keep insulin elevated; cells stop " +
				"responding, which causes energy crashes after meals, sugar cravings and belly fat.",
			Recommendation: PatternRecommendation{
				Supplement: "Berberine (discuss with doctor if on medication)",
				Dose:       "500mg",
				Timing:     "Before largest meal",
				Lifestyle:  "Lower refined carbs, try a 16:8 eating window, walk after meals",
			},
			Timeline: "4-8 weeks for stable energy",
		},
		{
			Name:       "Iron Deficiency",
			Indicators: []string{"pale", "dizziness", "breathless", "nails", "fatigue", "hair"},
			Explanation: "Low iron limits oxygen transport, producing fatigue, pale skin, brittle " +
				"nails and breathlessness on mild exertion. Common with heavy periods or low meat intake.",
			Recommendation: PatternRecommendation{
				Supplement: "Iron Bisglycinate (confirm with a ferritin test first)",
				Dose:       "25mg",
				Timing:     "Morning, away from coffee and dairy",
				Lifestyle:  "Pair iron-rich foods with vitamin C sources",
			},
			Timeline: "4-6 weeks after levels confirmed",
		},
		{
			Name:       "Chronic Stress Load",
			Indicators: []string{"stress", "anxiety", "tension", "insomnia", "fatigue", "overwhelmed"},
			Explanation: "Sustained stress keeps cortisol elevated, which disrupts sleep, depletes " +
				"minerals and exhausts the body even at rest.",
			Recommendation: PatternRecommendation{
				Supplement: "Ashwagandha root extract",
				Dose:       "300-600mg",
				Timing:     "Evening",
				Lifestyle:  "Ten minutes of daily breathing practice; schedule real recovery time",
			},
			Timeline: "2-4 weeks for noticeable calm",
		},
		{
			Name:       "Poor Sleep Hygiene",
			Indicators: []string{"insomnia", "tired", "restless", "caffeine", "screens"},
			Explanation: "Late screens and afternoon caffeine suppress melatonin and fragment deep " +
				"sleep, so hours in bed stop translating into recovery.",
			Recommendation: PatternRecommendation{
				Supplement: "None required",
				Dose:       "",
				Timing:     "",
				Lifestyle:  "Fixed wake time, screens off an hour before bed, caffeine before 2pm",
			},
			Timeline: "1-2 weeks of consistency",
		},
		{
			Name:       "Dehydration",
			Indicators: []string{"headaches", "thirst", "dizziness", "dryness", "cramps"},
			Explanation: "Mild chronic dehydration presents as headaches, light-headedness and " +
				"muscle cramps long before thirst becomes obvious.",
			Recommendation: PatternRecommendation{
				Supplement: "Electrolyte mix on training days",
				Dose:       "One serving",
				Timing:     "During or after exercise",
				Lifestyle:  "Two to three liters of water daily, more in heat",
			},
			Timeline: "Days",
		},
	}
}
