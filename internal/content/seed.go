package content

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed loads the fixed reference content. Idempotent: does nothing if the
// database already has destinations.
func Seed(ctx context.Context, logger *slog.Logger, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM destinations`).Scan(&n); err != nil {
		return fmt.Errorf("checking seed state: %w", err)
	}
	if n > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed tx: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range seedStatements() {
		if _, err := tx.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
			return fmt.Errorf("seeding content: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	logger.Info("reference content seeded")
	return nil
}

type seedStmt struct {
	query string
	args  []any
}

func seedStatements() []seedStmt {
	var stmts []seedStmt
	add := func(query string, args ...any) {
		stmts = append(stmts, seedStmt{query: query, args: args})
	}

	dayNames := map[int]string{
		8:  "يوم التروية",
		9:  "يوم عرفة",
		10: "يوم النحر",
		11: "أيام التشريق",
		12: "أيام التشريق",
		13: "أيام التشريق",
	}
	for day, name := range dayNames {
		add(`INSERT INTO day_names (day, name_ar) VALUES (?, ?)`, day, name)
	}

	tasks := []Task{
		{ID: "d8-1", Day: 8, TitleAr: "الإحرام من الميقات", TitleEn: "Ihram from Miqat", Time: "06:00"},
		{ID: "d8-2", Day: 8, TitleAr: "التوجه إلى منى", TitleEn: "Head to Mina", Time: "08:00"},
		{ID: "d8-3", Day: 8, TitleAr: "صلاة الظهر في منى", TitleEn: "Dhuhr prayer in Mina", Time: "12:30"},
		{ID: "d8-4", Day: 8, TitleAr: "صلاة العصر في منى", TitleEn: "Asr prayer in Mina", Time: "15:45"},
		{ID: "d8-5", Day: 8, TitleAr: "صلاة المغرب في منى", TitleEn: "Maghrib prayer in Mina", Time: "18:30"},
		{ID: "d8-6", Day: 8, TitleAr: "صلاة العشاء في منى", TitleEn: "Isha prayer in Mina", Time: "20:00"},
		{ID: "d8-7", Day: 8, TitleAr: "المبيت في منى", TitleEn: "Stay overnight in Mina"},
		{ID: "d9-1", Day: 9, TitleAr: "صلاة الفجر في منى", TitleEn: "Fajr prayer in Mina", Time: "04:45"},
		{ID: "d9-2", Day: 9, TitleAr: "التوجه إلى عرفة", TitleEn: "Head to Arafat", Time: "06:00"},
		{ID: "d9-3", Day: 9, TitleAr: "الوقوف بعرفة", TitleEn: "Standing at Arafat", Time: "12:00"},
		{ID: "d9-4", Day: 9, TitleAr: "صلاة الظهر والعصر جمعاً", TitleEn: "Combined Dhuhr & Asr", Time: "12:30"},
		{ID: "d9-5", Day: 9, TitleAr: "الدعاء والذكر", TitleEn: "Duaa and Dhikr"},
		{ID: "d9-6", Day: 9, TitleAr: "التوجه إلى مزدلفة", TitleEn: "Head to Muzdalifah", Time: "18:30"},
		{ID: "d9-7", Day: 9, TitleAr: "المبيت في مزدلفة", TitleEn: "Stay in Muzdalifah"},
		{ID: "d10-1", Day: 10, TitleAr: "صلاة الفجر في مزدلفة", TitleEn: "Fajr in Muzdalifah", Time: "04:45"},
		{ID: "d10-2", Day: 10, TitleAr: "جمع الحصى", TitleEn: "Collect pebbles"},
		{ID: "d10-3", Day: 10, TitleAr: "رمي جمرة العقبة", TitleEn: "Stone Jamrat Al-Aqaba", Time: "07:00"},
		{ID: "d10-4", Day: 10, TitleAr: "الذبح", TitleEn: "Sacrifice"},
		{ID: "d10-5", Day: 10, TitleAr: "الحلق أو التقصير", TitleEn: "Halq or Taqsir"},
		{ID: "d10-6", Day: 10, TitleAr: "طواف الإفاضة", TitleEn: "Tawaf Al-Ifadah"},
		{ID: "d10-7", Day: 10, TitleAr: "السعي", TitleEn: "Sa'i"},
	}
	pos := 0
	lastDay := 0
	for _, t := range tasks {
		if t.Day != lastDay {
			pos = 0
			lastDay = t.Day
		}
		pos++
		add(`INSERT INTO day_tasks (id, day, title_ar, title_en, time, position)
		     VALUES (?, ?, ?, ?, ?, ?)`, t.ID, t.Day, t.TitleAr, t.TitleEn, t.Time, pos)
	}

	library := []LibraryItem{
		{ID: "a1", Section: SectionAdhkar, TitleAr: "دعاء الطواف", TitleEn: "Tawaf Duaa",
			ContentAr: "رَبَّنَا آتِنَا فِي الدُّنْيَا حَسَنَةً وَفِي الْآخِرَةِ حَسَنَةً وَقِنَا عَذَابَ النَّارِ",
			ContentEn: "Our Lord, give us good in this world and good in the Hereafter, and protect us from the torment of the Fire."},
		{ID: "a2", Section: SectionAdhkar, TitleAr: "التلبية", TitleEn: "Talbiyah",
			ContentAr: "لَبَّيْكَ اللَّهُمَّ لَبَّيْكَ، لَبَّيْكَ لَا شَرِيكَ لَكَ لَبَّيْكَ، إِنَّ الْحَمْدَ وَالنِّعْمَةَ لَكَ وَالْمُلْكَ، لَا شَرِيكَ لَكَ",
			ContentEn: "Here I am, O Allah, here I am. Here I am, You have no partner, here I am. Verily all praise and blessings are Yours, and all sovereignty. You have no partner."},
		{ID: "a3", Section: SectionAdhkar, TitleAr: "دعاء يوم عرفة", TitleEn: "Day of Arafat Duaa",
			ContentAr: "لَا إِلَهَ إِلَّا اللهُ وَحْدَهُ لَا شَرِيكَ لَهُ، لَهُ الْمُلْكُ وَلَهُ الْحَمْدُ، وَهُوَ عَلَى كُلِّ شَيْءٍ قَدِيرٌ",
			ContentEn: "There is no god but Allah alone, with no partner. To Him belongs the dominion and all praise, and He is over all things competent."},
		{ID: "a4", Section: SectionAdhkar, TitleAr: "دعاء السعي", TitleEn: "Sa'i Duaa",
			ContentAr: "إِنَّ الصَّفَا وَالْمَرْوَةَ مِنْ شَعَائِرِ اللهِ",
			ContentEn: "Indeed, Safa and Marwa are among the symbols of Allah."},
		{ID: "a5", Section: SectionAdhkar, TitleAr: "دعاء رمي الجمرات", TitleEn: "Stoning Duaa",
			ContentAr: "اللهُ أَكْبَرُ، اللهُ أَكْبَرُ، اللهُ أَكْبَرُ",
			ContentEn: "Allah is the Greatest, Allah is the Greatest, Allah is the Greatest."},
		{ID: "d1", Section: SectionDuaa, TitleAr: "دعاء السفر", TitleEn: "Travel Duaa",
			ContentAr: "سُبْحَانَ الَّذِي سَخَّرَ لَنَا هَذَا وَمَا كُنَّا لَهُ مُقْرِنِينَ وَإِنَّا إِلَى رَبِّنَا لَمُنْقَلِبُونَ",
			ContentEn: "Glory to Him who has subjected this to us, and we could not have [otherwise] subdued it. And indeed we, to our Lord, will [surely] return."},
		{ID: "d2", Section: SectionDuaa, TitleAr: "دعاء الاستفتاح", TitleEn: "Opening Duaa",
			ContentAr: "اللَّهُمَّ بَاعِدْ بَيْنِي وَبَيْنَ خَطَايَايَ كَمَا بَاعَدْتَ بَيْنَ الْمَشْرِقِ وَالْمَغْرِبِ",
			ContentEn: "O Allah, distance me from my sins as You have distanced the East from the West."},
	}
	for i, it := range library {
		add(`INSERT INTO library_items (id, section, title_ar, title_en, content_ar, content_en, position)
		     VALUES (?, ?, ?, ?, ?, ?, ?)`, it.ID, it.Section, it.TitleAr, it.TitleEn, it.ContentAr, it.ContentEn, i+1)
	}

	services := []Service{
		{ID: "hospital", NameAr: "مستشفى", NameEn: "Hospital", Distance: "350m", Nearby: 3},
		{ID: "mosque", NameAr: "مسجد", NameEn: "Mosque", Distance: "150m", Nearby: 5},
		{ID: "atm", NameAr: "صراف آلي", NameEn: "ATM", Distance: "200m", Nearby: 8},
		{ID: "food", NameAr: "مطاعم", NameEn: "Food", Distance: "100m", Nearby: 12},
		{ID: "bathroom", NameAr: "دورة مياه", NameEn: "Bathroom", Distance: "50m", Nearby: 15},
		{ID: "police", NameAr: "شرطة", NameEn: "Police", Distance: "400m", Nearby: 2},
	}
	for i, sv := range services {
		add(`INSERT INTO services (id, name_ar, name_en, distance, nearby, position)
		     VALUES (?, ?, ?, ?, ?, ?)`, sv.ID, sv.NameAr, sv.NameEn, sv.Distance, sv.Nearby, i+1)
	}

	sheikhs := []Sheikh{
		{ID: "1", NameAr: "الشيخ أحمد العلي", NameEn: "Sheikh Ahmad Al-Ali", LanguagesAr: "العربية", LanguagesEn: "Arabic", Available: true},
		{ID: "2", NameAr: "الشيخ محمد الفقيه", NameEn: "Sheikh Muhammad Al-Faqih", LanguagesAr: "العربية، الإنجليزية", LanguagesEn: "Arabic, English", Available: true},
		{ID: "3", NameAr: "الشيخ عبدالله الحنفي", NameEn: "Sheikh Abdullah Al-Hanafi", LanguagesAr: "الأردية", LanguagesEn: "Urdu", Available: false},
		{ID: "4", NameAr: "الشيخ يوسف الشافعي", NameEn: "Sheikh Yusuf Al-Shafii", LanguagesAr: "الإندونيسية", LanguagesEn: "Indonesian", Available: true},
	}
	for i, sh := range sheikhs {
		add(`INSERT INTO sheikhs (id, name_ar, name_en, languages_ar, languages_en, available, position)
		     VALUES (?, ?, ?, ?, ?, ?, ?)`, sh.ID, sh.NameAr, sh.NameEn, sh.LanguagesAr, sh.LanguagesEn, sh.Available, i+1)
	}

	members := []GroupMember{
		{ID: "1", NameAr: "أحمد خان", NameEn: "Ahmed Khan", Status: StatusPresent},
		{ID: "2", NameAr: "فاطمة علي", NameEn: "Fatima Ali", Status: StatusPresent},
		{ID: "3", NameAr: "محمد حسن", NameEn: "Muhammad Hassan", Status: StatusPresent},
		{ID: "4", NameAr: "عائشة أحمد", NameEn: "Aisha Ahmed", Status: StatusSeparated},
		{ID: "5", NameAr: "عمر إبراهيم", NameEn: "Omar Ibrahim", Status: StatusPresent},
		{ID: "6", NameAr: "خديجة محمود", NameEn: "Khadija Mahmoud", Status: StatusPresent},
	}
	for i, m := range members {
		add(`INSERT INTO group_members (id, name_ar, name_en, status, position)
		     VALUES (?, ?, ?, ?, ?)`, m.ID, m.NameAr, m.NameEn, m.Status, i+1)
	}

	destinations := []Destination{
		{ID: "kaaba", NameAr: "الكعبة المشرفة", NameEn: "Holy Kaaba", Distance: "1.2 km", Time: "15 min"},
		{ID: "mina", NameAr: "منى", NameEn: "Mina", Distance: "5.4 km", Time: "45 min"},
		{ID: "arafat", NameAr: "عرفة", NameEn: "Arafat", Distance: "14.2 km", Time: "25 min (bus)"},
		{ID: "muzdalifah", NameAr: "مزدلفة", NameEn: "Muzdalifah", Distance: "9.1 km", Time: "20 min (bus)"},
		{ID: "jamarat", NameAr: "الجمرات", NameEn: "Jamarat", Distance: "5.2 km", Time: "40 min"},
		{ID: "camp", NameAr: "المخيم", NameEn: "My Camp", Distance: "0.8 km", Time: "10 min"},
	}
	for i, d := range destinations {
		add(`INSERT INTO destinations (id, name_ar, name_en, distance, time, position)
		     VALUES (?, ?, ?, ?, ?, ?)`, d.ID, d.NameAr, d.NameEn, d.Distance, d.Time, i+1)
	}

	steps := []RouteStep{
		{Direction: "straight", TextAr: "200 متر للأمام", TextEn: "200m straight ahead"},
		{Direction: "right", TextAr: "انعطف يمينًا", TextEn: "Turn right"},
		{Direction: "straight", TextAr: "500 متر للأمام", TextEn: "500m straight"},
		{Direction: "left", TextAr: "انعطف يسارًا عند المسجد", TextEn: "Turn left at mosque"},
	}
	for i, st := range steps {
		add(`INSERT INTO route_steps (position, direction, text_ar, text_en)
		     VALUES (?, ?, ?, ?)`, i+1, st.Direction, st.TextAr, st.TextEn)
	}

	alerts := []Alert{
		{ID: "1", Type: AlertMinistry, TitleAr: "إعلان من وزارة الحج", TitleEn: "Ministry Announcement",
			MessageAr: "يُرجى التوجه إلى مخيماتكم في منى قبل الساعة 8 مساءً",
			MessageEn: "Please return to your tents in Mina before 8 PM", Time: "14:30"},
		{ID: "2", Type: AlertSafety, TitleAr: "تنبيه الطقس", TitleEn: "Weather Alert",
			MessageAr: "درجة الحرارة مرتفعة - يُرجى شرب الماء بكثرة",
			MessageEn: "High temperature - Please drink plenty of water", Time: "12:00"},
		{ID: "3", Type: AlertInfo, TitleAr: "تذكير", TitleEn: "Reminder",
			MessageAr: "موعد صلاة الظهر الساعة 12:30",
			MessageEn: "Dhuhr prayer time is at 12:30", Time: "12:15"},
	}
	for i, a := range alerts {
		add(`INSERT INTO alerts (id, type, title_ar, title_en, message_ar, message_en, time, position)
		     VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, a.ID, a.Type, a.TitleAr, a.TitleEn, a.MessageAr, a.MessageEn, a.Time, i+1)
	}

	options := []SupportOption{
		{ID: "call", NameAr: "اتصال مباشر", NameEn: "Direct Call", DescAr: "تحدث مع فريق الدعم", DescEn: "Talk to support team"},
		{ID: "chat", NameAr: "محادثة نصية", NameEn: "Live Chat", DescAr: "راسلنا الآن", DescEn: "Message us now"},
		{ID: "email", NameAr: "بريد إلكتروني", NameEn: "Email Support", DescAr: "support@yusr.sa", DescEn: "support@yusr.sa"},
	}
	for i, o := range options {
		add(`INSERT INTO support_options (id, name_ar, name_en, desc_ar, desc_en, position)
		     VALUES (?, ?, ?, ?, ?, ?)`, o.ID, o.NameAr, o.NameEn, o.DescAr, o.DescEn, i+1)
	}

	faqs := []FAQ{
		{QuestionAr: "كيف أشحن المحفظة؟", QuestionEn: "How to charge wallet?",
			AnswerAr: "من خلال الذهاب إلى المحفظة ثم الضغط على شحن", AnswerEn: "Go to Wallet and tap Charge"},
		{QuestionAr: "كيف أتواصل مع حملتي؟", QuestionEn: "How to contact my campaign?",
			AnswerAr: "من خلال صفحة الأمان يمكنك رؤية معلومات حملتك", AnswerEn: "Through Safety page you can see your campaign info"},
	}
	for i, f := range faqs {
		add(`INSERT INTO faq_items (position, question_ar, question_en, answer_ar, answer_en)
		     VALUES (?, ?, ?, ?, ?)`, i+1, f.QuestionAr, f.QuestionEn, f.AnswerAr, f.AnswerEn)
	}

	return stmts
}
