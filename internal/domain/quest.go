package domain

// QuestData is the global quest rotation singleton.
// QuestsStartTimestamp is epoch milliseconds aligned to the most recent week
// boundary; CurQuestIDs is a fixed-length rotation drawn without replacement
// from the configured quest pool.
type QuestData struct {
	QuestsStartTimestamp int64    `json:"quests_start_timestamp"`
	CurQuestIDs          []string `json:"cur_quest_ids"`
}
