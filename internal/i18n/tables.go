package i18n

// builtin holds the dashboard's translation tables as shipped.
var builtin = map[Locale]map[Key]string{
	English: {
		NavDashboard:    "Dashboard",
		NavControls:     "Controls",
		NavLogs:         "Logs",
		NavSubscription: "Subscription",

		DashboardTitle:        "Grevo Control Panel",
		DashboardSubtitle:     "Monitor and Control Your Smart Farming Robot",
		DashboardStatus:       "Raspberry Pi Connected",
		DashboardSoilMoisture: "Soil Moisture",
		DashboardWaterTank:    "Water Tank Level",
		DashboardObstacle:     "Obstacle Detection",
		DashboardSystemStatus: "System Status",

		ControlsMovement: "Movement Controls",
		ControlsActions:  "Actions",
		ControlsForward:  "↑ Forward",
		ControlsLeft:     "← Left",
		ControlsStop:     "STOP",
		ControlsRight:    "→ Right",
		ControlsBackward: "↓ Backward",
		ControlsWater:    "Water Plants",
		ControlsWeed:     "Weed Now",

		SubscriptionTitle:    "Choose Your Plan",
		SubscriptionSubtitle: "Enhance your farming with our premium features",
		SubscriptionBase:     "Base Model",
		SubscriptionPremium:  "Premium Model",
		SubscriptionMonth:    "month",
		SubscriptionYear:     "year",
		SubscriptionPopular:  "Most Popular",
		SubscriptionChoose:   "Choose Plan",

		FooterText:     "© 2025 Grevo",
		FooterSubtitle: "Powered by Raspberry Pi • Real-time IoT Dashboard",
	},
	Hindi: {
		NavDashboard:    "डैशबोर्ड",
		NavControls:     "नियंत्रण",
		NavLogs:         "लॉग्स",
		NavSubscription: "सब्सक्रिप्शन",

		DashboardTitle:        "ग्रेवो नियंत्रण पैनल",
		DashboardSubtitle:     "अपने स्मार्ट कृषि रोबोट की निगरानी और नियंत्रण करें",
		DashboardStatus:       "रास्पबेरी पाई कनेक्टेड",
		DashboardSoilMoisture: "मिट्टी की नमी",
		DashboardWaterTank:    "पानी की टंकी का स्तर",
		DashboardObstacle:     "बाधा का पता लगाना",
		DashboardSystemStatus: "सिस्टम की स्थिति",

		ControlsMovement: "गति नियंत्रण",
		ControlsActions:  "क्रियाएं",
		ControlsForward:  "↑ आगे",
		ControlsLeft:     "← बाएं",
		ControlsStop:     "रुकें",
		ControlsRight:    "→ दाएं",
		ControlsBackward: "↓ पीछे",
		ControlsWater:    "पौधों को पानी दें",
		ControlsWeed:     "खरपतवार हटाएं",

		SubscriptionTitle:    "अपना प्लान चुनें",
		SubscriptionSubtitle: "हमारी प्रीमियम सुविधाओं के साथ अपनी खेती को बढ़ाएं",
		SubscriptionBase:     "बेस मॉडल",
		SubscriptionPremium:  "प्रीमियम मॉडल",
		SubscriptionMonth:    "महीना",
		SubscriptionYear:     "साल",
		SubscriptionPopular:  "सबसे लोकप्रिय",
		SubscriptionChoose:   "प्लान चुनें",

		FooterText:     "© 2025 ग्रेवो",
		FooterSubtitle: "रास्पबेरी पाई द्वारा संचालित • रियल-टाइम IoT डैशबोर्ड",
	},
	Marathi: {
		NavDashboard:    "डॅशबोर्ड",
		NavControls:     "नियंत्रण",
		NavLogs:         "लॉग्ज",
		NavSubscription: "सबस्क्रिप्शन",

		DashboardTitle:        "ग्रेवो नियंत्रण पॅनेल",
		DashboardSubtitle:     "तुमच्या स्मार्ट शेती रोबोटचे निरीक्षण आणि नियंत्रण करा",
		DashboardStatus:       "रास्पबेरी पाई कनेक्ट केले",
		DashboardSoilMoisture: "मातीची ओलावा",
		DashboardWaterTank:    "पाण्याच्या टाकीची पातळी",
		DashboardObstacle:     "अडथळा शोधणे",
		DashboardSystemStatus: "सिस्टमची स्थिती",

		ControlsMovement: "हालचाल नियंत्रण",
		ControlsActions:  "कृती",
		ControlsForward:  "↑ पुढे",
		ControlsLeft:     "← डावीकडे",
		ControlsStop:     "थांबा",
		ControlsRight:    "→ उजवीकडे",
		ControlsBackward: "↓ मागे",
		ControlsWater:    "झाडांना पाणी द्या",
		ControlsWeed:     "तण काढा",

		SubscriptionTitle:    "तुमचा प्लॅन निवडा",
		SubscriptionSubtitle: "आमच्या प्रीमियम वैशिष्ट्यांसह तुमची शेती वाढवा",
		SubscriptionBase:     "बेस मॉडेल",
		SubscriptionPremium:  "प्रीमियम मॉडेल",
		SubscriptionMonth:    "महिना",
		SubscriptionYear:     "वर्ष",
		SubscriptionPopular:  "सर्वाधिक लोकप्रिय",
		SubscriptionChoose:   "प्लॅन निवडा",

		FooterText:     "© 2025 ग्रेवो",
		FooterSubtitle: "रास्पबेरी पाई द्वारे चालवले • रियल-टाइम IoT डॅशबोर्ड",
	},
	Malayalam: {
		NavDashboard:    "ഡാഷ്‌ബോർഡ്",
		NavControls:     "നിയന്ത്രണങ്ങൾ",
		NavLogs:         "ലോഗുകൾ",
		NavSubscription: "സബ്‌സ്ക്രിപ്‌ഷൻ",

		DashboardTitle:        "ഗ്രേവോ കൺട്രോൾ പാനൽ",
		DashboardSubtitle:     "നിങ്ങളുടെ സ്മാർട്ട് കൃഷി റോബോട്ട് നിരീക്ഷിക്കുകയും നിയന്ത്രിക്കുകയും ചെയ്യുക",
		DashboardStatus:       "റാസ്പ്ബെറി പൈ കണക്റ്റഡ്",
		DashboardSoilMoisture: "മണ്ണിന്റെ ഈർപ്പം",
		DashboardWaterTank:    "വാട്ടർ ടാങ്ക് ലെവൽ",
		DashboardObstacle:     "തടസ്സം കണ്ടെത്തൽ",
		DashboardSystemStatus: "സിസ്റ്റം സ്റ്റാറ്റസ്",

		ControlsMovement: "ചലന നിയന്ത്രണങ്ങൾ",
		ControlsActions:  "പ്രവർത്തനങ്ങൾ",
		ControlsForward:  "↑ മുന്നോട്ട്",
		ControlsLeft:     "← ഇടത്",
		ControlsStop:     "നിർത്തുക",
		ControlsRight:    "→ വലത്",
		ControlsBackward: "↓ പിന്നോട്ട്",
		ControlsWater:    "ചെടികൾക്ക് വെള്ളം നൽകുക",
		ControlsWeed:     "കളകൾ നീക്കം ചെയ്യുക",

		SubscriptionTitle:    "നിങ്ങളുടെ പ്ലാൻ തിരഞ്ഞെടുക്കുക",
		SubscriptionSubtitle: "ഞങ്ങളുടെ പ്രീമിയം ഫീച്ചറുകൾ ഉപയോഗിച്ച് നിങ്ങളുടെ കൃഷി മെച്ചപ്പെടുത്തുക",
		SubscriptionBase:     "ബേസ് മോഡൽ",
		SubscriptionPremium:  "പ്രീമിയം മോഡൽ",
		SubscriptionMonth:    "മാസം",
		SubscriptionYear:     "വർഷം",
		SubscriptionPopular:  "ഏറ്റവും ജനപ്രിയം",
		SubscriptionChoose:   "പ്ലാൻ തിരഞ്ഞെടുക്കുക",

		FooterText:     "© 2025 ഗ്രേവോ",
		FooterSubtitle: "റാസ്പ്ബെറി പൈ പവർഡ് • റിയൽ-ടൈം IoT ഡാഷ്ബോർഡ്",
	},
}

// englishUI holds English strings for the widget, log and status panels.
// They are merged into English only; other locales show the key.
var englishUI = map[Key]string{
	DashboardSystemActive: "System Active",

	WidgetsMoistureLive:     "Live updates every 2 seconds",
	WidgetsSoilDry:          "Dry",
	WidgetsSoilModerate:     "Moderate",
	WidgetsSoilMoist:        "Moist",
	WidgetsObstacleDetected: "Obstacle Detected!",
	WidgetsPathClear:        "Path Clear",
	WidgetsSafetyStop:       "Robot stopped for safety",
	WidgetsTankOK:           "Tank OK",
	WidgetsTankEmpty:        "Tank Empty",
	WidgetsRefill:           "Refill required!",

	LogsTitle:            "System Logs",
	LogsSubtitle:         "Real-time activity from your AgriBot",
	LogsSystemLog:        "System Log",
	LogsLive:             "LIVE",
	LogsPaused:           "PAUSED",
	LogsPause:            "Pause",
	LogsResume:           "Resume",
	LogsExport:           "Export",
	LogsClear:            "Clear",
	LogsNoLogs:           "No logs to display",
	LogsEntries:          "entries",
	LogsAutoScroll:       "Auto-scroll enabled",
	LogsSystemInit:       "System initialized successfully",
	LogsConnected:        "Connected to Raspberry Pi",
	LogsCalibration:      "Sensor calibration completed",
	LogsObstacleDetected: "Obstacle detected at 15cm - robot stopped",
	LogsTankEmpty:        "Water tank empty - refill required",
}
