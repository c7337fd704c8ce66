package chat

import "time"

// ChannelFixtures returns the development seed channels.
func ChannelFixtures() []Channel {
	now := time.Now().UTC()
	return []Channel{
		{
			ID: "1", Name: "Team Announcements", Type: "team",
			Unread: 3, LastMessage: "New cohort starting next month",
			LastMessageTime: "10:30 AM", Online: true, CreatedAt: now,
		},
		{
			ID: "2", Name: "Campus Leads - Telangana", Type: "campus_leads",
			Unread: 5, LastMessage: "Info session scheduled",
			LastMessageTime: "11:45 AM", Online: true, CreatedAt: now,
		},
		{
			ID: "3", Name: "Campus Leads - Maharashtra", Type: "campus_leads",
			LastMessage: "Great turnout today!", LastMessageTime: "Yesterday", CreatedAt: now,
		},
		{
			ID: "4", Name: "EVP A25 Coordinators", Type: "general",
			Unread: 2, LastMessage: "Interview dates confirmed",
			LastMessageTime: "9:15 AM", Online: true, CreatedAt: now,
		},
		{
			ID: "5", Name: "EdAstra Team", Type: "team",
			Unread: 1, LastMessage: "Workshop materials ready",
			LastMessageTime: "2 days ago", CreatedAt: now,
		},
	}
}

// MessageFixtures returns the development seed messages for channel "2".
func MessageFixtures() []Message {
	return []Message{
		{
			ID: "1", ChannelID: "2", Sender: "Sarah", Role: "team",
			Content:   "Hi everyone! We have confirmed the dates for the EVP A25 preliminary interviews.",
			Timestamp: "10:30 AM", Time: "10:30", Date: "2025-10-22", Read: true,
		},
		{
			ID: "2", ChannelID: "2", Sender: "Priya", Role: "campus_lead",
			Content:   "That's great! We have around 30 students interested from our campus.",
			Timestamp: "10:35 AM", Time: "10:35", Date: "2025-10-22", Read: true,
		},
		{
			ID: "3", ChannelID: "2", Sender: "Rahul", Role: "campus_lead",
			Content:   "We organized an info session yesterday. Got excellent response with 45+ registrations!",
			Timestamp: "10:42 AM", Time: "10:42", Date: "2025-10-22", Read: true, Starred: true,
		},
	}
}
