package store

const (
	userColumns = `id, email, name, email_new, email_new_token, password_hash, salt, password_iterations,
    password_hint, encrypted_key, private_key, public_key, kdf_type, kdf_iterations, kdf_memory,
    kdf_parallelism, security_stamp, stale_token_kinds, api_key, verified_at, last_verifying_at,
    created_at, updated_at`

	createUser = `INSERT INTO users (id, email, name, password_hash, salt, password_iterations,
    password_hint, encrypted_key, private_key, public_key, kdf_type, kdf_iterations, kdf_memory,
    kdf_parallelism, security_stamp, verified_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
    RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	saveUser = `UPDATE users
    SET email = $2, name = $3, email_new = $4, email_new_token = $5, password_hash = $6, salt = $7,
        password_iterations = $8, password_hint = $9, encrypted_key = $10, private_key = $11,
        public_key = $12, kdf_type = $13, kdf_iterations = $14, kdf_memory = $15,
        kdf_parallelism = $16, security_stamp = $17, stale_token_kinds = $18, api_key = $19,
        verified_at = $20, last_verifying_at = $21, updated_at = NOW()
    WHERE id = $1;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`

	deviceColumns = `id, user_id, name, type, push_token, created_at, updated_at`

	findDeviceByIDAndUser = `SELECT ` + deviceColumns + `
    FROM devices
    WHERE id = $1 AND user_id = $2;`

	findDevicesByUser = `SELECT ` + deviceColumns + `
    FROM devices
    WHERE user_id = $1
    ORDER BY created_at;`

	saveDevice = `INSERT INTO devices (id, user_id, name, type, push_token)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (id, user_id) DO UPDATE
    SET name = EXCLUDED.name, type = EXCLUDED.type, push_token = EXCLUDED.push_token, updated_at = NOW();`

	deleteDevicesByUser = `DELETE FROM devices
    WHERE user_id = $1;`

	clearPushToken = `UPDATE devices
    SET push_token = '', updated_at = NOW()
    WHERE id = $1;`

	authRequestColumns = `id, user_id, request_device_id, request_device_type, request_ip, access_code,
    public_key, approved, enc_key, master_password_hash, response_device_id, response_date, created_at`

	createAuthRequest = `INSERT INTO auth_requests (id, user_id, request_device_id, request_device_type,
    request_ip, access_code, public_key)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + authRequestColumns + `;`

	findAuthRequestByID = `SELECT ` + authRequestColumns + `
    FROM auth_requests
    WHERE id = $1;`

	findAuthRequestByIDAndUser = `SELECT ` + authRequestColumns + `
    FROM auth_requests
    WHERE id = $1 AND user_id = $2;`

	findAuthRequestsByUser = `SELECT ` + authRequestColumns + `
    FROM auth_requests
    WHERE user_id = $1
    ORDER BY created_at;`

	saveAuthRequest = `UPDATE auth_requests
    SET approved = $2, enc_key = $3, master_password_hash = $4, response_device_id = $5, response_date = $6
    WHERE id = $1;`

	deleteAuthRequest = `DELETE FROM auth_requests
    WHERE id = $1;`

	findCiphersOwnedByUser = `SELECT id, user_id, organization_id, type, data, created_at, updated_at
    FROM ciphers
    WHERE user_id = $1 AND organization_id IS NULL;`

	saveCipherData = `UPDATE ciphers
    SET data = $3, updated_at = NOW()
    WHERE id = $1 AND user_id = $2;`

	findFoldersByUser = `SELECT id, user_id, name, created_at, updated_at
    FROM folders
    WHERE user_id = $1;`

	saveFolderName = `UPDATE folders
    SET name = $3, updated_at = NOW()
    WHERE id = $1 AND user_id = $2;`

	findSendsByUser = `SELECT id, user_id, data, akey, created_at, expires_at, deletion_at
    FROM sends
    WHERE user_id = $1;`

	saveSendData = `UPDATE sends
    SET data = $3, akey = $4
    WHERE id = $1 AND user_id = $2;`

	findEmergencyAccessByGrantor = `SELECT id, grantor_id, grantee_id, grantee_email, key_encrypted, status,
    created_at, updated_at
    FROM emergency_access
    WHERE grantor_id = $1;`

	saveEmergencyAccessKey = `UPDATE emergency_access
    SET key_encrypted = $3, updated_at = NOW()
    WHERE id = $1 AND grantor_id = $2;`

	findMembershipsByUser = `SELECT id, user_id, organization_id, reset_password_key, status, created_at
    FROM memberships
    WHERE user_id = $1;`

	saveMembershipResetKey = `UPDATE memberships
    SET reset_password_key = $3
    WHERE organization_id = $1 AND user_id = $2;`

	isPolicyEnabledForMember = `SELECT COALESCE(bool_or(p.enabled), false)
    FROM org_policies p
    JOIN memberships m ON m.organization_id = p.organization_id
    WHERE m.id = $1 AND p.type = $2;`

	logUserEvent = `INSERT INTO security_events (event_type, user_id, device_type, ip)
    VALUES ($1, $2, $3, $4);`
)
