package i18n

// english is the default table and defines the full key vocabulary.
var english = map[string]string{
	"welcome":          "Welcome to Yusr",
	"subtitle":         "Your Smart Hajj Companion",
	"selectMode":       "Select Usage Mode",
	"pilgrimMode":      "Pilgrim Mode",
	"organizerMode":    "Organizer Mode",
	"pilgrimDesc":      "For honored pilgrims",
	"organizerDesc":    "For campaign organizers",
	"login":            "Login",
	"username":         "Username",
	"password":         "Password",
	"signIn":           "Sign In",
	"home":             "Home",
	"hajjDay":          "Hajj Day",
	"dailyGuide":       "Daily Guide",
	"tawafCounter":     "Tawaf Counter",
	"wallet":           "Wallet",
	"library":          "Library",
	"alerts":           "Alerts",
	"profile":          "Profile",
	"settings":         "Settings",
	"safety":           "Safety",
	"navigation":       "Navigation",
	"services":         "Services",
	"sheikhs":          "Ask Sheikh",
	"rounds":           "rounds",
	"completed":        "Completed",
	"remaining":        "Remaining",
	"reset":            "Reset",
	"balance":          "Balance",
	"sar":              "SAR",
	"pay":              "Pay",
	"charge":           "Charge",
	"enterPin":         "Enter PIN",
	"confirm":          "Confirm",
	"cancel":           "Cancel",
	"adhkar":           "Adhkar",
	"duaa":             "Duaa",
	"quran":            "Quran",
	"tasks":            "Tasks",
	"campaign":         "Campaign",
	"groupStatus":      "Group Status",
	"allPresent":       "All Present",
	"language":         "Language",
	"darkMode":         "Dark Mode",
	"fontSize":         "Font Size",
	"personalInfo":     "Personal Info",
	"healthInfo":       "Health Info",
	"bloodType":        "Blood Type",
	"diseases":         "Chronic Diseases",
	"allergies":        "Allergies",
	"emergency":        "Emergency",
	"name":             "Name",
	"passport":         "Passport",
	"nationality":      "Nationality",
	"today":            "Today",
	"ihram":            "Ihram",
	"tawaf":            "Tawaf",
	"sai":              "Sa'i",
	"arafat":           "Arafat",
	"muzdalifah":       "Muzdalifah",
	"mina":             "Mina",
	"stoning":          "Stoning",
	"sacrifice":        "Sacrifice",
	"halq":             "Halq/Taqsir",
	"tawafIfadah":      "Tawaf Al-Ifadah",
	"farewell":         "Farewell Tawaf",
	"ministryAlert":    "Ministry Alert",
	"safetyAlert":      "Safety Alert",
	"nearbyServices":   "Nearby Services",
	"hospital":         "Hospital",
	"mosque":           "Mosque",
	"atm":              "ATM",
	"food":             "Food",
	"bathroom":         "Bathroom",
	"police":           "Police",
	"callSheikh":       "Call Sheikh",
	"available":        "Available",
	"busy":             "Busy",
	"pilgrims":         "Pilgrims",
	"present":          "Present",
	"separated":        "Separated",
	"sendAlert":        "Send Alert",
	"groupList":        "Group List",
	"back":             "Back",
	"support":          "Support",
	"startTawaf":       "Start Tawaf",
	"stopTawaf":        "Stop",
	"autoTracking":     "Auto Tracking",
	"navigate":         "Navigate",
	"routeGuidance":    "Route Guidance",
	"estimatedTime":    "Est. Time",
	"distance":         "Distance",
	"morning":          "Morning",
	"evening":          "Evening",
	"sleep":            "Sleep",
	"general":          "General",
	"hajjSpecific":     "Hajj Specific",
	"yourCurrency":     "Your Currency",
	"converting":       "Converting to SAR",
	"callConnected":    "Call Connected",
	"endCall":          "End Call",
	"connecting":       "Connecting...",
	"technicalSupport": "Technical Support",
}

var tables = map[Language]map[string]string{
	English: english,

	Arabic: {
		"welcome":          "مرحباً بك في يُسر",
		"subtitle":         "رفيقك الذكي في رحلة الحج",
		"selectMode":       "اختر وضع الاستخدام",
		"pilgrimMode":      "وضع الحاج",
		"organizerMode":    "وضع المنظم",
		"pilgrimDesc":      "للحجاج الكرام",
		"organizerDesc":    "لمنظمي الحملات",
		"login":            "تسجيل الدخول",
		"username":         "اسم المستخدم",
		"password":         "كلمة المرور",
		"signIn":           "دخول",
		"home":             "الرئيسية",
		"hajjDay":          "يوم الحج",
		"dailyGuide":       "الدليل اليومي",
		"tawafCounter":     "عداد الطواف",
		"wallet":           "المحفظة",
		"library":          "المكتبة",
		"alerts":           "التنبيهات",
		"profile":          "الملف الشخصي",
		"settings":         "الإعدادات",
		"safety":           "الأمان",
		"navigation":       "الملاحة",
		"services":         "الخدمات",
		"sheikhs":          "استشارة الشيوخ",
		"rounds":           "أشواط",
		"completed":        "مكتمل",
		"remaining":        "متبقي",
		"reset":            "إعادة",
		"balance":          "الرصيد",
		"sar":              "ريال",
		"pay":              "الدفع",
		"charge":           "الشحن",
		"enterPin":         "أدخل الرقم السري",
		"confirm":          "تأكيد",
		"cancel":           "إلغاء",
		"adhkar":           "الأذكار",
		"duaa":             "الدعاء",
		"quran":            "القرآن",
		"tasks":            "المهام",
		"campaign":         "الحملة",
		"groupStatus":      "حالة المجموعة",
		"allPresent":       "الجميع حاضر",
		"language":         "اللغة",
		"darkMode":         "الوضع الليلي",
		"fontSize":         "حجم الخط",
		"personalInfo":     "المعلومات الشخصية",
		"healthInfo":       "المعلومات الصحية",
		"bloodType":        "فصيلة الدم",
		"diseases":         "الأمراض المزمنة",
		"allergies":        "الحساسية",
		"emergency":        "الطوارئ",
		"name":             "الاسم",
		"passport":         "رقم الجواز",
		"nationality":      "الجنسية",
		"today":            "اليوم",
		"ihram":            "الإحرام",
		"tawaf":            "الطواف",
		"sai":              "السعي",
		"arafat":           "عرفة",
		"muzdalifah":       "مزدلفة",
		"mina":             "منى",
		"stoning":          "رمي الجمرات",
		"sacrifice":        "الذبح",
		"halq":             "الحلق أو التقصير",
		"tawafIfadah":      "طواف الإفاضة",
		"farewell":         "طواف الوداع",
		"ministryAlert":    "تنبيه من الوزارة",
		"safetyAlert":      "تنبيه أمان",
		"nearbyServices":   "الخدمات القريبة",
		"hospital":         "مستشفى",
		"mosque":           "مسجد",
		"atm":              "صراف آلي",
		"food":             "طعام",
		"bathroom":         "دورة مياه",
		"police":           "شرطة",
		"callSheikh":       "اتصل بشيخ",
		"available":        "متاح",
		"busy":             "مشغول",
		"pilgrims":         "حجاج",
		"present":          "حاضر",
		"separated":        "منفصل",
		"sendAlert":        "إرسال تنبيه",
		"groupList":        "قائمة المجموعة",
		"back":             "رجوع",
		"support":          "الدعم",
		"startTawaf":       "ابدأ الطواف",
		"stopTawaf":        "إيقاف",
		"autoTracking":     "تتبع تلقائي",
		"navigate":         "توجيه",
		"routeGuidance":    "إرشاد المسار",
		"estimatedTime":    "الوقت المقدر",
		"distance":         "المسافة",
		"morning":          "الصباح",
		"evening":          "المساء",
		"sleep":            "النوم",
		"general":          "عام",
		"hajjSpecific":     "خاص بالحج",
		"yourCurrency":     "عملتك",
		"converting":       "التحويل إلى ريال",
		"callConnected":    "المكالمة متصلة",
		"endCall":          "إنهاء المكالمة",
		"connecting":       "جاري الاتصال...",
		"technicalSupport": "الدعم الفني",
	},

	Urdu: {
		"welcome":          "یُسر میں خوش آمدید",
		"subtitle":         "آپ کا سمارٹ حج ساتھی",
		"selectMode":       "موڈ منتخب کریں",
		"pilgrimMode":      "حاجی موڈ",
		"organizerMode":    "منتظم موڈ",
		"pilgrimDesc":      "معزز حجاج کے لیے",
		"organizerDesc":    "مہم کے منتظمین کے لیے",
		"login":            "لاگ ان",
		"username":         "صارف نام",
		"password":         "پاس ورڈ",
		"signIn":           "داخل ہوں",
		"home":             "ہوم",
		"hajjDay":          "حج کا دن",
		"dailyGuide":       "روزانہ گائیڈ",
		"tawafCounter":     "طواف کاؤنٹر",
		"wallet":           "بٹوہ",
		"library":          "لائبریری",
		"alerts":           "الرٹس",
		"profile":          "پروفائل",
		"settings":         "ترتیبات",
		"safety":           "حفاظت",
		"navigation":       "نیویگیشن",
		"services":         "خدمات",
		"sheikhs":          "شیخ سے پوچھیں",
		"rounds":           "چکر",
		"completed":        "مکمل",
		"remaining":        "باقی",
		"reset":            "ری سیٹ",
		"balance":          "بیلنس",
		"sar":              "ریال",
		"pay":              "ادائیگی",
		"charge":           "چارج",
		"enterPin":         "پن درج کریں",
		"confirm":          "تصدیق",
		"cancel":           "منسوخ",
		"adhkar":           "اذکار",
		"duaa":             "دعا",
		"tasks":            "کام",
		"back":             "واپس",
		"support":          "مدد",
		"startTawaf":       "طواف شروع کریں",
		"technicalSupport": "ٹیکنیکل سپورٹ",
	},

	Indonesian: {
		"welcome":          "Selamat datang di Yusr",
		"subtitle":         "Pendamping Haji Pintar Anda",
		"selectMode":       "Pilih Mode",
		"pilgrimMode":      "Mode Jamaah",
		"organizerMode":    "Mode Penyelenggara",
		"login":            "Masuk",
		"home":             "Beranda",
		"hajjDay":          "Hari Haji",
		"dailyGuide":       "Panduan Harian",
		"tawafCounter":     "Penghitung Tawaf",
		"wallet":           "Dompet",
		"library":          "Perpustakaan",
		"alerts":           "Peringatan",
		"settings":         "Pengaturan",
		"back":             "Kembali",
		"support":          "Dukungan",
		"technicalSupport": "Dukungan Teknis",
	},

	Turkish: {
		"welcome":          "Yusr'a Hoş Geldiniz",
		"subtitle":         "Akıllı Hac Yardımcınız",
		"selectMode":       "Mod Seçin",
		"pilgrimMode":      "Hacı Modu",
		"organizerMode":    "Organizatör Modu",
		"login":            "Giriş",
		"home":             "Ana Sayfa",
		"hajjDay":          "Hac Günü",
		"dailyGuide":       "Günlük Rehber",
		"tawafCounter":     "Tavaf Sayacı",
		"wallet":           "Cüzdan",
		"library":          "Kütüphane",
		"alerts":           "Uyarılar",
		"settings":         "Ayarlar",
		"back":             "Geri",
		"support":          "Destek",
		"technicalSupport": "Teknik Destek",
	},

	French: {
		"welcome":          "Bienvenue sur Yusr",
		"subtitle":         "Votre Compagnon de Hajj Intelligent",
		"selectMode":       "Sélectionner le Mode",
		"pilgrimMode":      "Mode Pèlerin",
		"organizerMode":    "Mode Organisateur",
		"login":            "Connexion",
		"home":             "Accueil",
		"hajjDay":          "Jour du Hajj",
		"dailyGuide":       "Guide Quotidien",
		"tawafCounter":     "Compteur de Tawaf",
		"wallet":           "Portefeuille",
		"library":          "Bibliothèque",
		"alerts":           "Alertes",
		"settings":         "Paramètres",
		"back":             "Retour",
		"support":          "Support",
		"technicalSupport": "Support Technique",
	},

	Malay: {
		"welcome":          "Selamat datang ke Yusr",
		"subtitle":         "Teman Haji Pintar Anda",
		"selectMode":       "Pilih Mod",
		"pilgrimMode":      "Mod Jemaah",
		"organizerMode":    "Mod Penganjur",
		"login":            "Log Masuk",
		"home":             "Utama",
		"hajjDay":          "Hari Haji",
		"dailyGuide":       "Panduan Harian",
		"tawafCounter":     "Pengira Tawaf",
		"wallet":           "Dompet",
		"library":          "Perpustakaan",
		"alerts":           "Amaran",
		"settings":         "Tetapan",
		"back":             "Kembali",
		"support":          "Sokongan",
		"technicalSupport": "Sokongan Teknikal",
	},

	Bengali: {
		"welcome":          "ইউসরে স্বাগতম",
		"subtitle":         "আপনার স্মার্ট হজ সঙ্গী",
		"selectMode":       "মোড নির্বাচন করুন",
		"pilgrimMode":      "হাজী মোড",
		"organizerMode":    "সংগঠক মোড",
		"login":            "লগইন",
		"home":             "হোম",
		"hajjDay":          "হজের দিন",
		"dailyGuide":       "দৈনিক গাইড",
		"tawafCounter":     "তাওয়াফ কাউন্টার",
		"wallet":           "ওয়ালেট",
		"library":          "লাইব্রেরি",
		"alerts":           "সতর্কতা",
		"settings":         "সেটিংস",
		"back":             "ফিরে",
		"support":          "সাহায্য",
		"technicalSupport": "প্রযুক্তিগত সহায়তা",
	},

	Persian: {
		"welcome":          "به یُسر خوش آمدید",
		"subtitle":         "همراه هوشمند حج شما",
		"selectMode":       "انتخاب حالت",
		"pilgrimMode":      "حالت حاجی",
		"organizerMode":    "حالت سازمان‌دهنده",
		"login":            "ورود",
		"home":             "خانه",
		"hajjDay":          "روز حج",
		"dailyGuide":       "راهنمای روزانه",
		"tawafCounter":     "شمارنده طواف",
		"wallet":           "کیف پول",
		"library":          "کتابخانه",
		"alerts":           "هشدارها",
		"settings":         "تنظیمات",
		"back":             "بازگشت",
		"support":          "پشتیبانی",
		"technicalSupport": "پشتیبانی فنی",
	},

	Pashto: {
		"welcome":          "یُسر ته ښه راغلاست",
		"subtitle":         "ستاسو هوښیار حج ملګری",
		"selectMode":       "حالت غوره کړئ",
		"pilgrimMode":      "حاجي حالت",
		"organizerMode":    "تنظیم کوونکی حالت",
		"login":            "ننوتل",
		"home":             "کور",
		"hajjDay":          "د حج ورځ",
		"dailyGuide":       "ورځنی لارښود",
		"tawafCounter":     "د طواف شمیرونکی",
		"wallet":           "بټوه",
		"library":          "کتابتون",
		"alerts":           "خبرتیاوې",
		"settings":         "ترتیبات",
		"back":             "شاته",
		"support":          "ملاتړ",
		"technicalSupport": "تخنیکي ملاتړ",
	},

	Chinese: {
		"welcome":          "欢迎来到Yusr",
		"subtitle":         "您的智能朝觐伴侣",
		"selectMode":       "选择模式",
		"pilgrimMode":      "朝觐者模式",
		"organizerMode":    "组织者模式",
		"login":            "登录",
		"home":             "主页",
		"hajjDay":          "朝觐日",
		"dailyGuide":       "每日指南",
		"tawafCounter":     "绕行计数器",
		"wallet":           "钱包",
		"library":          "图书馆",
		"alerts":           "警报",
		"settings":         "设置",
		"back":             "返回",
		"support":          "支持",
		"technicalSupport": "技术支持",
	},

	Russian: {
		"welcome":          "Добро пожаловать в Yusr",
		"subtitle":         "Ваш умный спутник Хаджа",
		"selectMode":       "Выберите режим",
		"pilgrimMode":      "Режим паломника",
		"organizerMode":    "Режим организатора",
		"login":            "Вход",
		"home":             "Главная",
		"hajjDay":          "День Хаджа",
		"dailyGuide":       "Ежедневный гид",
		"tawafCounter":     "Счётчик Тавафа",
		"wallet":           "Кошелёк",
		"library":          "Библиотека",
		"alerts":           "Оповещения",
		"settings":         "Настройки",
		"back":             "Назад",
		"support":          "Поддержка",
		"technicalSupport": "Техническая поддержка",
	},
}
