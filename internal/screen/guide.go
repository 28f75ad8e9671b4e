package screen

import (
	"context"

	"github.com/yusrlabs/yusr/internal/app"
)

type guideTask struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Time  string `json:"time,omitempty"`
	Done  bool   `json:"done"`
}

type dailyGuideBody struct {
	HajjDayLabel string      `json:"hajjDayLabel"`
	HajjDay      int         `json:"hajjDay"`
	DayName      string      `json:"dayName"`
	TasksLabel   string      `json:"tasksLabel"`
	Done         int         `json:"done"`
	Total        int         `json:"total"`
	Tasks        []guideTask `json:"tasks"`
}

func renderDailyGuide(ctx context.Context, rc renderContext) (any, error) {
	s := rc.state

	dayName, err := rc.content.DayName(ctx, s.HajjDay)
	if err != nil {
		return nil, err
	}
	tasks, err := rc.content.TasksForDay(ctx, s.HajjDay)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(tasks))
	list := make([]guideTask, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
		list[i] = guideTask{
			ID:    t.ID,
			Title: rc.pick(t.TitleAr, t.TitleEn),
			Time:  t.Time,
			Done:  s.TaskDone(t.ID),
		}
	}
	done, total := app.TaskProgress(s, ids)

	return dailyGuideBody{
		HajjDayLabel: rc.t("hajjDay"),
		HajjDay:      s.HajjDay,
		DayName:      dayName,
		TasksLabel:   rc.t("tasks"),
		Done:         done,
		Total:        total,
		Tasks:        list,
	}, nil
}
