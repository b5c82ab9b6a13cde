package handlers

import (
	"fmt"

	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/disgoorg/disgo/discord"
)

func IsBoostMessage(t discord.MessageType) bool {
	return t >= discord.MessageTypeGuildBoost && t <= discord.MessageTypeGuildBoostTier3
}

func announcementEmbed(title string, color int, avatarURL string, a *models.Announcement) discord.Embed {
	embed := discord.Embed{Title: title, Color: color}
	if a.Message != nil {
		embed.Description = *a.Message
	}
	if avatarURL != "" {
		embed.Thumbnail = &discord.EmbedResource{URL: avatarURL}
	}
	if a.ImageURL != nil && *a.ImageURL != "" {
		embed.Image = &discord.EmbedResource{URL: *a.ImageURL}
	}
	return embed
}

func WelcomeEmbed(name, avatarURL string, a *models.Announcement) discord.Embed {
	return announcementEmbed(fmt.Sprintf("Welcome, %s!", name), config.WelcomeColor, avatarURL, a)
}

func BoostEmbed(name, avatarURL string, a *models.Announcement) discord.Embed {
	return announcementEmbed(fmt.Sprintf("Thank you for boosting, %s!", name), config.BoostColor, avatarURL, a)
}

func LeaveMessage(name string) string {
	return fmt.Sprintf("***%s has left the server.***", name)
}
