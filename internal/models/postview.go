package models

import "time"

// PostView is the derived, read-only presentation row for a post in an
// aggregated listing. It flattens the post, its topic and forum, the
// poster's profile, awards, and points into one record and is never
// mutated after construction.
type PostView struct {
	PostID       uint       `json:"post_id"`
	Subject      string     `json:"subject"`
	Body         string     `json:"body"`
	Mood         string     `json:"mood"`
	EnableHTML   bool       `json:"enable_html"`
	EnableMarkup bool       `json:"enable_markup"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	EditedAt     *time.Time `json:"edited_at,omitempty"`

	TopicID     uint   `json:"topic_id"`
	TopicTitle  string `json:"topic_title"`
	TopicLocked bool   `json:"topic_locked"`
	ForumID     uint   `json:"forum_id"`
	ForumName   string `json:"forum_name"`

	PosterID        uint   `json:"poster_id"`
	PosterName      string `json:"poster_name"`
	PosterLocation  string `json:"poster_location"`
	PosterAvatar    string `json:"poster_avatar"`
	PosterMoodBase  string `json:"poster_mood_base"`
	PosterSignature string `json:"poster_signature"`
	PosterPronouns  string `json:"poster_pronouns"`
	PosterIsBanned  bool   `json:"poster_is_banned"`

	Awards    []AwardSummary `json:"awards"`
	Points    float64        `json:"points"`
	RankLabel string         `json:"rank_label"`

	IsEditable  bool `json:"is_editable"`
	IsDeletable bool `json:"is_deletable"`
}

// BuildPostView assembles a PostView for the given requester at the
// given evaluation time. The post must have its Topic, Topic.Forum, and
// User associations loaded.
func BuildPostView(post *Post, requester Requester, awards []AwardSummary, points float64, rankLabel string, at time.Time) PostView {
	if awards == nil {
		awards = []AwardSummary{}
	}
	return PostView{
		PostID:       post.ID,
		Subject:      post.Subject,
		Body:         post.Body,
		Mood:         post.Mood,
		EnableHTML:   post.EnableHTML,
		EnableMarkup: post.EnableMarkup,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
		EditedAt:     post.EditedAt,

		TopicID:     post.TopicID,
		TopicTitle:  post.Topic.Title,
		TopicLocked: post.Topic.Locked,
		ForumID:     post.Topic.ForumID,
		ForumName:   post.Topic.Forum.Name,

		PosterID:        post.UserID,
		PosterName:      post.User.Username,
		PosterLocation:  post.User.Location,
		PosterAvatar:    post.User.Avatar,
		PosterMoodBase:  post.User.MoodBase,
		PosterSignature: post.User.Signature,
		PosterPronouns:  post.User.Pronouns,
		PosterIsBanned:  post.User.IsBanned(at),

		Awards:    awards,
		Points:    points,
		RankLabel: rankLabel,

		IsEditable:  CanEditPost(post, requester),
		IsDeletable: CanDeletePost(requester),
	}
}

// CanEditPost applies the edit eligibility rule: the author may edit
// their own post while the topic is unlocked and they hold the
// edit-own-posts capability; a holder of edit-any-post may edit
// regardless of authorship or lock state.
func CanEditPost(post *Post, requester Requester) bool {
	if requester.Caps.Has(CapEditAnyPost) {
		return true
	}
	if requester.UserID == 0 || requester.UserID != post.UserID {
		return false
	}
	if post.Topic.Locked {
		return false
	}
	return requester.Caps.Has(CapEditOwnPosts)
}

// CanDeletePost applies the delete eligibility rule: only holders of
// the delete-posts capability; authorship is irrelevant.
func CanDeletePost(requester Requester) bool {
	return requester.Caps.Has(CapDeletePosts)
}
