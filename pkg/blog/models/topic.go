package models

// Topic represents a topic tag that can be attached to groups and posts
type Topic string

const (
	TopicDefault Topic = "DEFAULT"
	TopicComedy  Topic = "COMEDY"
	TopicGeneral Topic = "GENERAL"
	TopicDrama   Topic = "DRAMA"
	TopicNews    Topic = "NEWS"
	TopicFantasy Topic = "FANTASY"
	TopicHorror  Topic = "HORROR"
	// Post-only topics
	TopicTech    Topic = "TECH"
	TopicEconomy Topic = "ECONOMY"
)
