package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Timestamps are unix milliseconds; dates are "YYYY-MM-DD" and times "HH:MM".
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS category (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    icon TEXT NOT NULL,
    color TEXT NOT NULL,
    is_default INTEGER NOT NULL DEFAULT 0,
    user_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS subcategory (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    module_type TEXT,
    is_default INTEGER NOT NULL DEFAULT 0,
    category_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (category_id) REFERENCES category(id) ON DELETE CASCADE,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS day_template (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    color TEXT NOT NULL,
    user_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS template_slot (
    id TEXT PRIMARY KEY,
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    sort_order INTEGER NOT NULL,
    subcategory_id TEXT NOT NULL,
    template_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (subcategory_id) REFERENCES subcategory(id) ON DELETE CASCADE,
    FOREIGN KEY (template_id) REFERENCES day_template(id) ON DELETE CASCADE,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS template_recurrence (
    id TEXT PRIMARY KEY,
    day_of_week INTEGER NOT NULL CHECK (day_of_week BETWEEN 0 AND 6),
    template_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (template_id) REFERENCES day_template(id) ON DELETE CASCADE,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS workout_plan (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    user_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS planned_day (
    id TEXT PRIMARY KEY,
    date TEXT NOT NULL,
    template_id TEXT,
    user_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (template_id) REFERENCES day_template(id) ON DELETE SET NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS planned_slot (
    id TEXT PRIMARY KEY,
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    sort_order INTEGER NOT NULL,
    subcategory_id TEXT NOT NULL,
    planned_day_id TEXT NOT NULL,
    template_slot_id TEXT,
    workout_plan_id TEXT,
    user_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (subcategory_id) REFERENCES subcategory(id) ON DELETE CASCADE,
    FOREIGN KEY (planned_day_id) REFERENCES planned_day(id) ON DELETE CASCADE,
    FOREIGN KEY (template_slot_id) REFERENCES template_slot(id) ON DELETE SET NULL,
    FOREIGN KEY (workout_plan_id) REFERENCES workout_plan(id) ON DELETE SET NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS exercise (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    muscle_group TEXT NOT NULL,
    equipment TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image_url TEXT
);

CREATE TABLE IF NOT EXISTS workout_plan_exercise (
    id TEXT PRIMARY KEY,
    sort_order INTEGER NOT NULL,
    planned_sets INTEGER NOT NULL,
    planned_reps INTEGER NOT NULL,
    planned_weight REAL NOT NULL,
    planned_rest_seconds INTEGER NOT NULL,
    exercise_id TEXT NOT NULL,
    workout_plan_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (exercise_id) REFERENCES exercise(id) ON DELETE CASCADE,
    FOREIGN KEY (workout_plan_id) REFERENCES workout_plan(id) ON DELETE CASCADE,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS workout_session (
    id TEXT PRIMARY KEY,
    status TEXT NOT NULL DEFAULT 'in_progress',
    started_at INTEGER NOT NULL,
    completed_at INTEGER,
    notes TEXT,
    workout_plan_id TEXT NOT NULL,
    planned_slot_id TEXT,
    user_id TEXT NOT NULL,
    FOREIGN KEY (workout_plan_id) REFERENCES workout_plan(id) ON DELETE CASCADE,
    FOREIGN KEY (planned_slot_id) REFERENCES planned_slot(id) ON DELETE SET NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS workout_set (
    id TEXT PRIMARY KEY,
    set_number INTEGER NOT NULL,
    reps INTEGER NOT NULL,
    weight REAL NOT NULL,
    feeling INTEGER NOT NULL,
    exercise_id TEXT NOT NULL,
    workout_plan_exercise_id TEXT,
    session_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    completed_at INTEGER NOT NULL,
    FOREIGN KEY (exercise_id) REFERENCES exercise(id) ON DELETE CASCADE,
    FOREIGN KEY (workout_plan_exercise_id) REFERENCES workout_plan_exercise(id) ON DELETE SET NULL,
    FOREIGN KEY (session_id) REFERENCES workout_session(id) ON DELETE CASCADE,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_category_user_id ON category(user_id);
CREATE UNIQUE INDEX IF NOT EXISTS uidx_category_name_user ON category(name, user_id);
CREATE INDEX IF NOT EXISTS idx_subcategory_category_id ON subcategory(category_id);
CREATE INDEX IF NOT EXISTS idx_subcategory_user_id ON subcategory(user_id);
CREATE UNIQUE INDEX IF NOT EXISTS uidx_subcategory_name_category ON subcategory(name, category_id);
CREATE INDEX IF NOT EXISTS idx_day_template_user_id ON day_template(user_id);
CREATE UNIQUE INDEX IF NOT EXISTS uidx_day_template_name_user ON day_template(name, user_id);
CREATE INDEX IF NOT EXISTS idx_template_slot_template_id ON template_slot(template_id);
CREATE INDEX IF NOT EXISTS idx_template_slot_subcategory_id ON template_slot(subcategory_id);
CREATE INDEX IF NOT EXISTS idx_template_recurrence_template_id ON template_recurrence(template_id);
CREATE UNIQUE INDEX IF NOT EXISTS uidx_template_recurrence_day_user ON template_recurrence(day_of_week, user_id);
CREATE INDEX IF NOT EXISTS idx_planned_day_date ON planned_day(date);
CREATE UNIQUE INDEX IF NOT EXISTS uidx_planned_day_date_user ON planned_day(date, user_id);
CREATE INDEX IF NOT EXISTS idx_planned_slot_planned_day_id ON planned_slot(planned_day_id);
CREATE INDEX IF NOT EXISTS idx_planned_slot_subcategory_id ON planned_slot(subcategory_id);
CREATE INDEX IF NOT EXISTS idx_workout_plan_user_id ON workout_plan(user_id);
CREATE INDEX IF NOT EXISTS idx_workout_plan_exercise_plan_id ON workout_plan_exercise(workout_plan_id);
CREATE INDEX IF NOT EXISTS idx_workout_session_user_status ON workout_session(user_id, status);
CREATE INDEX IF NOT EXISTS idx_workout_session_plan_id ON workout_session(workout_plan_id);
CREATE INDEX IF NOT EXISTS idx_workout_set_session_id ON workout_set(session_id);
CREATE INDEX IF NOT EXISTS idx_workout_set_exercise_id ON workout_set(exercise_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
