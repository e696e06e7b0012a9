package store

const (
	saveListCache = `
		INSERT INTO case_list_cache (
			principal,
			records,
			updated_at
		) VALUES ($1, $2, $3)
		ON CONFLICT (principal) DO UPDATE SET
			records    = excluded.records,
			updated_at = excluded.updated_at;`

	getListCache = `
		SELECT records
		FROM case_list_cache
		WHERE principal = $1;`

	deleteListCache = `
		DELETE FROM case_list_cache
		WHERE principal = $1;`

	saveDetailCache = `
		INSERT INTO case_detail_cache (
			principal,
			case_id,
			record,
			updated_at
		) VALUES ($1, $2, $3, $4)
		ON CONFLICT (principal, case_id) DO UPDATE SET
			record     = excluded.record,
			updated_at = excluded.updated_at;`

	getDetailCache = `
		SELECT record
		FROM case_detail_cache
		WHERE principal = $1 AND case_id = $2;`

	deleteDetailCache = `
		DELETE FROM case_detail_cache
		WHERE principal = $1 AND case_id = $2;`

	deleteDetailCacheForPrincipal = `
		DELETE FROM case_detail_cache
		WHERE principal = $1;`

	deleteAllListCache = `
		DELETE FROM case_list_cache;`

	deleteAllDetailCache = `
		DELETE FROM case_detail_cache;`
)
