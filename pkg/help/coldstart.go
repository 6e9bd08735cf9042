package help

const ColdstartYAML = `# article-stats Quick Start

inputs:
  files: ".json, .jsonl/.ndjson (mongoexport), .yaml, .csv, .xlsx"
  sql: "--dsn with --db-driver sqlite|postgres and --table (default articles)"
  mongo: "--mongo-uri, --mongo-db, --mongo-collection; --cache-dir keeps a snapshot"

output_formats:
  yaml: "Default"
  json: "Indented JSON"
  csv: "Header row plus one record per word or group"
  text: "Numbered word list or aligned table"

commands:
  top_words: |
    article-stats words --input articles.jsonl --top 25

  english_titles: |
    article-stats words --input articles.csv --lang en --stop-word golang

  detect_language: |
    article-stats words --input articles.csv --lang auto

  group_by_rubric: |
    article-stats --format csv groupby --input articles.jsonl --column rubric

  report: |
    article-stats --output results/report.yaml report --input articles.jsonl --column rubric --column author

  from_mongo: |
    article-stats words --mongo-uri mongodb://localhost:27017 --mongo-db amadeus --mongo-collection vc_new --cache-dir .cache

  import_and_query: |
    article-stats db import --input articles.jsonl --db articles.db
    article-stats groupby --dsn articles.db --column rubric

environment:
  ARTSTATS_LANGUAGE: "ru"
  ARTSTATS_EXTRA_STOP_WORDS: "это"
  ARTSTATS_TOKENIZER: "word"
  ARTSTATS_TOP: "25"
  ARTSTATS_FORMAT: "yaml"
  ARTSTATS_TABLE: "articles"
  ARTSTATS_DSN: ""
  ARTSTATS_MONGO_URI: ""
`
