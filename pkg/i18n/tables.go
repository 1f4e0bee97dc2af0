package i18n

var english = table{
	"registration": table{
		"title":    "Register for Free Community Internet",
		"subtitle": "Complete the form below to register for complimentary internet access.",
		"form": table{
			"firstName": "First Name",
			"surname":   "Surname",
			"cellphone": "Cellphone Number",
			"email":     "Email Address (optional)",
			"address":   "Residential Address",
			"suburb":    "Suburb",
			"province":  "Province",
			"temple":    "Temple",
		},
		"buttons": table{
			"register":    "Register",
			"registering": "Registering...",
		},
		"validation": table{
			"firstNameRequired": "First name is required",
			"surnameRequired":   "Surname is required",
			"cellphoneRequired": "Cellphone number is required",
			"cellphoneInvalid":  "Please enter a valid South African cellphone number (9 digits starting with 6, 7, or 8)",
			"cellphoneExists":   "This cellphone number is already registered",
			"emailInvalid":      "Please enter a valid email address",
			"addressRequired":   "Residential address is required",
			"suburbRequired":    "Suburb is required",
			"provinceRequired":  "Province is required",
			"templeRequired":    "Temple name is required",
		},
		"messages": table{
			"success":            "Registration successful. Welcome, {{firstName}}!",
			"registrationFailed": "Registration failed. Please try again.",
			"genericError":       "Something went wrong. Please try again later.",
		},
	},
	"provinces": table{
		"Eastern Cape":  "Eastern Cape",
		"Free State":    "Free State",
		"Gauteng":       "Gauteng",
		"KwaZulu-Natal": "KwaZulu-Natal",
		"Limpopo":       "Limpopo",
		"Mpumalanga":    "Mpumalanga",
		"Northern Cape": "Northern Cape",
		"North West":    "North West",
		"Western Cape":  "Western Cape",
	},
	"report": table{
		"subject": "New Registrations Report - {{count}} registrations ({{date}})",
		"heading": "Registration Report",
		"badge":   "NEW REGISTRATIONS",
		"footer":  "This automated report was generated by the Shembe Ark registration system.",
	},
	"footer": table{
		"copyright": "Providing complimentary internet access to our community.",
	},
}

var zulu = table{
	"registration": table{
		"title":    "Bhalisela i-Internet Yamahhala Yomphakathi",
		"subtitle": "Gcwalisa ifomu elingezansi ukuze ubhalisele ukufinyelela kwe-internet kwamahhala.",
		"form": table{
			"firstName": "Igama",
			"surname":   "Isibongo",
			"cellphone": "Inombolo Yeselula",
			"email":     "Ikheli le-imeyili (okukhethwa kukho)",
			"address":   "Ikheli Lasekhaya",
			"suburb":    "Indawo",
			"province":  "Isifundazwe",
			"temple":    "Ithempeli",
		},
		"buttons": table{
			"register":    "Bhalisa",
			"registering": "Iyabhalisa...",
		},
		"validation": table{
			"firstNameRequired": "Igama liyadingeka",
			"surnameRequired":   "Isibongo siyadingeka",
			"cellphoneRequired": "Inombolo yeselula iyadingeka",
			"cellphoneInvalid":  "Sicela ufake inombolo yeselula yaseNingizimu Afrika evumelekile (amadijithi angu-9 aqala ngo-6, 7, noma 8)",
			"cellphoneExists":   "Le nombolo yeselula isibhalisiwe",
			"emailInvalid":      "Sicela ufake ikheli le-imeyili elivumelekile",
			"addressRequired":   "Ikheli lasekhaya liyadingeka",
			"suburbRequired":    "Indawo iyadingeka",
			"provinceRequired":  "Isifundazwe siyadingeka",
			"templeRequired":    "Igama lethempeli liyadingeka",
		},
		"messages": table{
			"success":            "Ukubhalisa kuphumelele. Siyakwamukela, {{firstName}}!",
			"registrationFailed": "Ukubhalisa kuhlulekile. Sicela uzame futhi.",
			"genericError":       "Kukhona okungahambanga kahle. Sicela uzame futhi emuva kwesikhathi.",
		},
	},
	"provinces": table{
		"Eastern Cape":  "Mpumalanga Koloni",
		"Free State":    "Freyistata",
		"Gauteng":       "Gauteng",
		"KwaZulu-Natal": "KwaZulu-Natali",
		"Limpopo":       "Limpopo",
		"Mpumalanga":    "Mpumalanga",
		"Northern Cape": "Nyakatho Koloni",
		"North West":    "Nyakatho Ntshonalanga",
		"Western Cape":  "Ntshonalanga Koloni",
	},
	"footer": table{
		"copyright": "Sinikeza ukufinyelela kwe-internet kwamahhala emphakathini wethu.",
	},
}
