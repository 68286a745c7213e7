// ABOUTME: Static translation tables for English and Assamese
// ABOUTME: Both tables carry the same key set

package i18n

var tables = map[Language]map[string]string{
	English: {
		// Navigation and common
		"dashboard": "Dashboard",
		"logout":    "Logout",
		"login":     "Login",
		"welcome":   "Welcome",
		"loading":   "Loading",
		"error":     "Error",
		"success":   "Success",
		"cancel":    "Cancel",
		"save":      "Save",
		"delete":    "Delete",
		"edit":      "Edit",
		"view":      "View",
		"close":     "Close",

		// Dashboard sections
		"cultivationIntelligence": "Cultivation Intelligence",
		"leafQualityScanner":      "Leaf Quality Scanner",
		"farmerSimulator":         "Farmer Simulator",
		"pluckerAnalytics":        "Plucker Analytics",
		"marketIntelligence":      "Market Intelligence",
		"aiConsequenceMirror":     "AI Consequence Mirror",

		// Cultivation intelligence
		"healthScore":       "Health Score",
		"pestRisk":          "Pest Risk",
		"droughtRisk":       "Drought Risk",
		"soilMoisture":      "Soil Moisture",
		"temperature":       "Temperature",
		"humidity":          "Humidity",
		"rainfall":          "Rainfall (7d)",
		"aiRecommendations": "AI Recommendations",
		"optimal":           "Optimal",
		"suboptimal":        "Suboptimal",
		"warning":           "Warning",
		"critical":          "Critical",
		"low":               "Low",
		"medium":            "Medium",
		"high":              "High",

		// Leaf quality scanner
		"uploadLeafImage": "Upload Leaf Image",
		"scanLeaf":        "Scan Leaf",
		"analyzing":       "Analyzing",
		"grade":           "Grade",
		"confidence":      "Confidence",
		"severity":        "Severity",
		"diseaseType":     "Disease Type",
		"healthy":         "Healthy",
		"diseased":        "Diseased",
		"stressed":        "Stressed",
		"uncertain":       "Uncertain",

		// Market intelligence
		"currentPrice":             "Current Price",
		"priceChange":              "Price Change",
		"forecast":                 "Forecast",
		"marketInsight":            "Market Insight",
		"strategicRecommendations": "Strategic Recommendations",

		// Plucker analytics
		"pluckerName":   "Plucker Name",
		"dailyYield":    "Daily Yield",
		"efficiency":    "Efficiency",
		"totalPluckers": "Total Pluckers",
		"avgYield":      "Avg Yield",

		// Farmer simulator
		"runSimulation":    "Run Simulation",
		"yieldInput":       "Yield Input",
		"scenario":         "Scenario",
		"projectedRevenue": "Projected Revenue",
		"downloadReport":   "Download Report",

		// AI consequence mirror
		"showMeTheFuture":  "Show Me the Future",
		"standardApproach": "Standard Approach",
		"aiOptimized":      "AI-Optimized",
		"day":              "Day",
		"profit":           "Profit",
		"diseaseSpread":    "Disease Spread",
		"workerStress":     "Worker Stress",

		// Auth
		"signInWithGoogle": "Sign in with Google",
		"useDemo":          "Use Demo",
		"signOut":          "Sign Out",

		// Messages
		"noDataAvailable": "No data available",
		"fetchingData":    "Fetching data",
		"uploadImage":     "Upload an image",
		"selectFile":      "Select a file",
		"processingImage": "Processing image",

		// Units
		"kg":      "kg",
		"celsius": "°C",
		"percent": "%",
		"rupees":  "₹",
		"perKg":   "/kg",

		// Time
		"today":     "Today",
		"yesterday": "Yesterday",
		"lastWeek":  "Last Week",
		"lastMonth": "Last Month",

		// Actions
		"refresh": "Refresh",
		"export":  "Export",
		"import":  "Import",
		"share":   "Share",
		"print":   "Print",

		// Tab descriptions
		"realtimeIotMonitoring":       "Real-time IoT monitoring",
		"aiPoweredGrading":            "AI-powered grading",
		"simulateActionBeforeOutcome": "Simulate Action Before Outcome",
		"priceForecastingTrends":      "Price forecasting & trends",
		"manageYourProfile":           "Manage your profile",
		"backToHome":                  "Back to Home",
		"actionSimulator":             "Action Simulator",
		"accountSettings":             "Account Settings",
	},

	Assamese: {
		// Navigation and common
		"dashboard": "ড্যাশবোৰ্ড",
		"logout":    "লগআউট",
		"login":     "লগইন",
		"welcome":   "স্বাগতম",
		"loading":   "লোড হৈ আছে",
		"error":     "ত্ৰুটি",
		"success":   "সফল",
		"cancel":    "বাতিল",
		"save":      "সংৰক্ষণ",
		"delete":    "মচক",
		"edit":      "সম্পাদনা",
		"view":      "চাওক",
		"close":     "বন্ধ কৰক",

		// Dashboard sections
		"cultivationIntelligence": "খেতি বুদ্ধিমত্তা",
		"leafQualityScanner":      "পাত মান স্কেনাৰ",
		"farmerSimulator":         "কৃষক সিমুলেটৰ",
		"pluckerAnalytics":        "তোলনীয়া বিশ্লেষণ",
		"marketIntelligence":      "বজাৰ বুদ্ধিমত্তা",
		"aiConsequenceMirror":     "এআই পৰিণাম দাপোন",

		// Cultivation intelligence
		"healthScore":       "স্বাস্থ্য স্কোৰ",
		"pestRisk":          "কীট-পতংগৰ বিপদ",
		"droughtRisk":       "খৰাঙৰ বিপদ",
		"soilMoisture":      "মাটিৰ আৰ্দ্ৰতা",
		"temperature":       "উষ্ণতা",
		"humidity":          "আৰ্দ্ৰতা",
		"rainfall":          "বৰষুণ (৭ দিন)",
		"aiRecommendations": "এআই পৰামৰ্শ",
		"optimal":           "উত্তম",
		"suboptimal":        "উপ-উত্তম",
		"warning":           "সতৰ্কবাণী",
		"critical":          "সংকটজনক",
		"low":               "কম",
		"medium":            "মধ্যম",
		"high":              "উচ্চ",

		// Leaf quality scanner
		"uploadLeafImage": "পাতৰ ছবি আপলোড কৰক",
		"scanLeaf":        "পাত স্কেন কৰক",
		"analyzing":       "বিশ্লেষণ কৰি আছে",
		"grade":           "গ্ৰেড",
		"confidence":      "আত্মবিশ্বাস",
		"severity":        "তীব্ৰতা",
		"diseaseType":     "ৰোগৰ প্ৰকাৰ",
		"healthy":         "সুস্থ",
		"diseased":        "ৰোগীয়া",
		"stressed":        "চাপগ্ৰস্ত",
		"uncertain":       "অনিশ্চিত",

		// Market intelligence
		"currentPrice":             "বৰ্তমান মূল্য",
		"priceChange":              "মূল্য পৰিৱৰ্তন",
		"forecast":                 "পূৰ্বাভাস",
		"marketInsight":            "বজাৰ অন্তৰ্দৃষ্টি",
		"strategicRecommendations": "কৌশলগত পৰামৰ্শ",

		// Plucker analytics
		"pluckerName":   "তোলনীয়াৰ নাম",
		"dailyYield":    "দৈনিক উৎপাদন",
		"efficiency":    "দক্ষতা",
		"totalPluckers": "মুঠ তোলনীয়া",
		"avgYield":      "গড় উৎপাদন",

		// Farmer simulator
		"runSimulation":    "সিমুলেশন চলাওক",
		"yieldInput":       "উৎপাদন ইনপুট",
		"scenario":         "পৰিস্থিতি",
		"projectedRevenue": "প্ৰক্ষেপিত আয়",
		"downloadReport":   "প্ৰতিবেদন ডাউনলোড",

		// AI consequence mirror
		"showMeTheFuture":  "ভৱিষ্যত দেখুৱাওক",
		"standardApproach": "মানক পদ্ধতি",
		"aiOptimized":      "এআই-অনুকূলিত",
		"day":              "দিন",
		"profit":           "লাভ",
		"diseaseSpread":    "ৰোগ বিস্তাৰ",
		"workerStress":     "শ্ৰমিক চাপ",

		// Auth
		"signInWithGoogle": "গুগলৰ সৈতে চাইন ইন",
		"useDemo":          "ডেমো ব্যৱহাৰ কৰক",
		"signOut":          "চাইন আউট",

		// Messages
		"noDataAvailable": "কোনো তথ্য উপলব্ধ নহয়",
		"fetchingData":    "তথ্য আনি আছে",
		"uploadImage":     "এটা ছবি আপলোড কৰক",
		"selectFile":      "এটা ফাইল বাছনি কৰক",
		"processingImage": "ছবি প্ৰক্ৰিয়াকৰণ",

		// Units
		"kg":      "কেজি",
		"celsius": "°চে",
		"percent": "%",
		"rupees":  "₹",
		"perKg":   "/কেজি",

		// Time
		"today":     "আজি",
		"yesterday": "কালি",
		"lastWeek":  "যোৱা সপ্তাহ",
		"lastMonth": "যোৱা মাহ",

		// Actions
		"refresh": "সতেজ কৰক",
		"export":  "ৰপ্তানি",
		"import":  "আমদানি",
		"share":   "শ্বেয়াৰ",
		"print":   "প্ৰিন্ট",

		// Tab descriptions
		"realtimeIotMonitoring":       "ৰিয়েল-টাইম আইঅ'টি নিৰীক্ষণ",
		"aiPoweredGrading":            "এআই-চালিত গ্ৰেডিং",
		"simulateActionBeforeOutcome": "ফলাফলৰ আগতে কাৰ্য অনুকৰণ কৰক",
		"priceForecastingTrends":      "মূল্য পূৰ্বাভাস আৰু ধাৰা",
		"manageYourProfile":           "আপোনাৰ প্ৰ'ফাইল পৰিচালনা কৰক",
		"backToHome":                  "ঘৰলৈ ঘূৰি যাওক",
		"actionSimulator":             "কাৰ্য সিমুলেটৰ",
		"accountSettings":             "একাউণ্ট ছেটিংছ",
	},
}
