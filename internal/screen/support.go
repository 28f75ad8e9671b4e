package screen

import "context"

type supportOptionItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Desc string `json:"desc"`
}

type faqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type supportBody struct {
	Heading            string              `json:"heading"`
	Options            []supportOptionItem `json:"options"`
	MessagePlaceholder string              `json:"messagePlaceholder"`
	SendLabel          string              `json:"sendLabel"`
	FAQLabel           string              `json:"faqLabel"`
	FAQs               []faqEntry          `json:"faqs"`
}

func renderSupport(ctx context.Context, rc renderContext) (any, error) {
	options, err := rc.content.SupportOptions(ctx)
	if err != nil {
		return nil, err
	}
	faqs, err := rc.content.FAQs(ctx)
	if err != nil {
		return nil, err
	}

	body := supportBody{
		Heading:            rc.pick("نحن هنا لمساعدتك", "We're here to help you"),
		MessagePlaceholder: rc.pick("اكتب رسالتك هنا...", "Type your message here..."),
		SendLabel:          rc.pick("إرسال", "Send"),
		FAQLabel:           rc.pick("الأسئلة الشائعة", "FAQ"),
	}
	for _, o := range options {
		body.Options = append(body.Options, supportOptionItem{
			ID:   o.ID,
			Name: rc.pick(o.NameAr, o.NameEn),
			Desc: rc.pick(o.DescAr, o.DescEn),
		})
	}
	for _, f := range faqs {
		body.FAQs = append(body.FAQs, faqEntry{
			Question: rc.pick(f.QuestionAr, f.QuestionEn),
			Answer:   rc.pick(f.AnswerAr, f.AnswerEn),
		})
	}
	return body, nil
}
