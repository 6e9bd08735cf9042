package db

const sqliteSchema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Articles: one row per scraped article with its engagement counters
CREATE TABLE IF NOT EXISTS articles (
    article_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT UNIQUE,
    title TEXT,
    author TEXT,
    rubric TEXT,
    published_at TIMESTAMP,

    views INTEGER,
    likes INTEGER,
    comments INTEGER,
    favorites INTEGER,
    hits INTEGER,

    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_articles_author ON articles(author);
CREATE INDEX IF NOT EXISTS idx_articles_rubric ON articles(rubric);
CREATE INDEX IF NOT EXISTS idx_articles_published ON articles(published_at);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS articles (
    article_id BIGSERIAL PRIMARY KEY,
    url TEXT UNIQUE,
    title TEXT,
    author TEXT,
    rubric TEXT,
    published_at TIMESTAMPTZ,

    views DOUBLE PRECISION,
    likes DOUBLE PRECISION,
    comments DOUBLE PRECISION,
    favorites DOUBLE PRECISION,
    hits DOUBLE PRECISION,

    created_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_articles_author ON articles(author);
CREATE INDEX IF NOT EXISTS idx_articles_rubric ON articles(rubric);
CREATE INDEX IF NOT EXISTS idx_articles_published ON articles(published_at);
`
