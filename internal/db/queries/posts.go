package queries

import (
	"database/sql"

	"github.com/ortobahn/ortobahn/internal/db"
)

// PostQueries contains all SQL queries for scheduled post operations
type PostQueries struct {
	InsertPost        string
	GetPostByID       string
	ListPostsByClient string
	ListUpcomingPosts string
	UpdatePost        string
	UpdatePostStatus  string
	DeletePost        string
}

// NewPostQueries returns a new instance of PostQueries
func NewPostQueries() *PostQueries {
	return &PostQueries{
		InsertPost: `INSERT INTO posts (id, client_id, strategy_id, title, body, channel,
			scheduled_for, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		GetPostByID: `SELECT id, client_id, strategy_id, title, body, channel,
			scheduled_for, status, created_at, updated_at FROM posts WHERE id = ?`,
		ListPostsByClient: `SELECT id, client_id, strategy_id, title, body, channel,
			scheduled_for, status, created_at, updated_at FROM posts
			WHERE client_id = ? ORDER BY scheduled_for`,
		ListUpcomingPosts: `SELECT id, client_id, strategy_id, title, body, channel,
			scheduled_for, status, created_at, updated_at FROM posts
			WHERE status = ? AND scheduled_for >= ? ORDER BY scheduled_for LIMIT ?`,
		UpdatePost: `UPDATE posts SET strategy_id = ?, title = ?, body = ?, channel = ?,
			scheduled_for = ?, status = ?, updated_at = ? WHERE id = ?`,
		UpdatePostStatus: "UPDATE posts SET status = ?, updated_at = ? WHERE id = ?",
		DeletePost:       "DELETE FROM posts WHERE id = ?",
	}
}

// CreatePost creates a new scheduled post
func CreatePost(database *sql.DB, post *db.Post) (*db.Post, error) {
	if post.ID == "" {
		post.ID = generateUUID()
	}
	if post.Status == "" {
		post.Status = db.PostStatusDraft
	}
	post.CreatedAt = nowUTC()
	post.UpdatedAt = post.CreatedAt

	_, err := db.ExecWithRetry(database,
		NewPostQueries().InsertPost,
		post.ID, post.ClientID, post.StrategyID, post.Title, post.Body,
		post.Channel, post.ScheduledFor, post.Status, post.CreatedAt, post.UpdatedAt,
	)

	return post, err
}

// GetPostByID gets a post by ID. Returns (nil, nil) when not found.
func GetPostByID(database *sql.DB, postID string) (*db.Post, error) {
	post := &db.Post{}
	err := database.QueryRow(NewPostQueries().GetPostByID, postID).Scan(
		&post.ID, &post.ClientID, &post.StrategyID, &post.Title, &post.Body,
		&post.Channel, &post.ScheduledFor, &post.Status, &post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ListPostsByClient returns the posts attached to a client
func ListPostsByClient(database *sql.DB, clientID string) ([]db.Post, error) {
	rows, err := db.QueryWithRetry(database, NewPostQueries().ListPostsByClient, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

// ListUpcomingPosts returns the next scheduled posts at or after the given
// RFC3339 timestamp
func ListUpcomingPosts(database *sql.DB, from string, limit int) ([]db.Post, error) {
	rows, err := db.QueryWithRetry(database, NewPostQueries().ListUpcomingPosts, db.PostStatusScheduled, from, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func scanPosts(rows *sql.Rows) ([]db.Post, error) {
	var posts []db.Post
	for rows.Next() {
		var post db.Post
		if err := rows.Scan(
			&post.ID, &post.ClientID, &post.StrategyID, &post.Title, &post.Body,
			&post.Channel, &post.ScheduledFor, &post.Status, &post.CreatedAt, &post.UpdatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// UpdatePost updates the editable fields of a post
func UpdatePost(database *sql.DB, post *db.Post) error {
	post.UpdatedAt = nowUTC()
	_, err := db.ExecWithRetry(database,
		NewPostQueries().UpdatePost,
		post.StrategyID, post.Title, post.Body, post.Channel,
		post.ScheduledFor, post.Status, post.UpdatedAt, post.ID,
	)
	return err
}

// UpdatePostStatus moves a post between draft, scheduled and published
func UpdatePostStatus(database *sql.DB, postID, status string) error {
	_, err := db.ExecWithRetry(database, NewPostQueries().UpdatePostStatus, status, nowUTC(), postID)
	return err
}

// DeletePost removes a post from the database
func DeletePost(database *sql.DB, postID string) error {
	_, err := db.ExecWithRetry(database, NewPostQueries().DeletePost, postID)
	return err
}
